package controllers

import (
	stderrors "errors"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func convertToHotelResponse(hotel models.Hotel) dto.HotelResponse {
	rooms := make([]dto.RoomResponse, 0, len(hotel.Rooms))
	for _, room := range hotel.Rooms {
		rooms = append(rooms, convertToRoomResponse(room))
	}
	return dto.HotelResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Address:     hotel.Address,
		PhoneNumber: hotel.PhoneNumber,
		Email:       hotel.Email,
		UserID:      hotel.UserID,
		Amenities:   hotel.Amenities,
		Rooms:       rooms,
	}
}

// GetHotels lists hotels with their rooms. Admins see everything with
// viewAll=true (the default); with viewAll=false they see only hotels
// they own.
func GetHotels(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	viewAll := c.DefaultQuery("viewAll", "true") == "true"

	query := config.DB.Preload("Rooms").Order("name ASC")
	if currentUserRole != constants.RoleAdmin || !viewAll {
		query = query.Where("user_id = ?", currentUserID)
	}

	var hotels []models.Hotel
	if err := query.Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	hotelResponses := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelResponses = append(hotelResponses, convertToHotelResponse(hotel))
	}

	response.Success(c, hotelResponses)
}

func GetHotelDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := config.DB.Preload("Rooms").First(&hotel, uint(id)).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToHotelResponse(hotel))
}

// SearchHotels runs the fuzzy search over hotel names, addresses and
// amenities. Anonymous; an empty query returns an empty list.
func SearchHotels(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.Success(c, []dto.ScoredHotel{})
		return
	}

	results, err := services.SearchHotels(config.DB, query)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, results)
}

// CreateHotel creates a hotel owned by the calling admin.
func CreateHotel(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateHotelInput(request.Name, request.Address, request.PhoneNumber, request.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel := models.Hotel{
		Name:        request.Name,
		Address:     request.Address,
		PhoneNumber: request.PhoneNumber,
		Email:       request.Email,
		UserID:      currentUserID,
		Amenities:   pq.StringArray(request.Amenities),
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertToHotelResponse(hotel))
}

func UpdateHotel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var request dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if uint(id) != request.ID {
		response.BadRequest(c, "Hotel ID does not match the ID in the request")
		return
	}

	if err := validator.ValidateHotelInput(request.Name, request.Address, request.PhoneNumber, request.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	hotel.Name = request.Name
	hotel.Address = request.Address
	hotel.PhoneNumber = request.PhoneNumber
	hotel.Email = request.Email
	hotel.Amenities = pq.StringArray(request.Amenities)

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToHotelResponse(hotel))
}

// DeleteHotel removes a hotel and its rooms. Refused while any room still
// has active bookings.
func DeleteHotel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := config.DB.Preload("Rooms").First(&hotel, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	var activeBookings int64
	err = config.DB.Model(&models.Booking{}).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("rooms.hotel_id = ? AND bookings.is_cancelled = ?", hotel.ID, false).
		Count(&activeBookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if activeBookings > 0 {
		response.BadRequest(c, "Hotel still has rooms with active bookings")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.NoContent(c)
}
