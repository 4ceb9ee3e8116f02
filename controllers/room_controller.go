package controllers

import (
	stderrors "errors"
	"log"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const roomsCacheKey = "rooms:all"

func invalidateRoomCaches() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey); err != nil {
		log.Printf("Failed to invalidate room cache: %v", err)
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	resp := dto.RoomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		RoomNumber: room.RoomNumber,
		RoomName:   room.RoomName,
		BedCount:   room.BedCount,
		Price:      room.Price,
		ImageUrl:   room.ImageUrl,
	}
	if room.Hotel.ID != 0 {
		resp.HotelName = room.Hotel.Name
	}
	return resp
}

// GetRooms lists rooms ordered by room number. With startDate and endDate
// both given it lists only rooms free over that range; passing one date
// without the other is rejected. guestCount filters by bed count and
// currentBookingId lets an edit flow ignore its own booking.
func GetRooms(c *gin.Context) {
	startRaw := c.Query("startDate")
	endRaw := c.Query("endDate")

	if (startRaw == "") != (endRaw == "") {
		response.BadRequest(c, "startDate and endDate must be provided together")
		return
	}

	var startDate, endDate *time.Time
	if startRaw != "" {
		start, err := validator.ParseBookingDate(startRaw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		end, err := validator.ParseBookingDate(endRaw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if err := validator.ValidateBookingDates(start, end); err != nil {
			response.BadRequest(c, "End date cannot be earlier or equal to start date")
			return
		}
		startDate, endDate = &start, &end
	}

	var guestCount *int
	if raw := c.Query("guestCount"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 1 {
			response.BadRequest(c, "Guest count must be at least 1")
			return
		}
		guestCount = &count
	}

	var excludeBookingID *uint
	if raw := c.Query("currentBookingId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid currentBookingId")
			return
		}
		bookingID := uint(id)
		excludeBookingID = &bookingID
	}

	unfiltered := startDate == nil && guestCount == nil && excludeBookingID == nil

	var rooms []models.Room
	if unfiltered {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomsCacheKey, &rooms); err == nil && len(rooms) > 0 {
			roomResponses := make([]dto.RoomResponse, 0, len(rooms))
			for _, room := range rooms {
				roomResponses = append(roomResponses, convertToRoomResponse(room))
			}
			response.Success(c, roomResponses)
			return
		}
	}

	rooms, err := services.GetAvailableRooms(config.DB, startDate, endDate, guestCount, excludeBookingID)
	if err != nil {
		response.ServerError(c)
		return
	}

	if unfiltered {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, roomsCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Failed to cache rooms: %v", err)
		}
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

func GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Hotel").First(&room, uint(id)).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// CreateRoom adds a room to a hotel. Admin only. A hotel holds between
// MinRoomsPerHotel and MaxRoomsPerHotel rooms; creating past the maximum
// is refused.
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRoomInput(request.RoomNumber, request.BedCount, request.Price); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var roomCount int64
	if err := config.DB.Model(&models.Room{}).Where("hotel_id = ?", request.HotelID).Count(&roomCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if roomCount >= constants.MaxRoomsPerHotel {
		response.BadRequest(c, "Hotel already holds the maximum number of rooms")
		return
	}

	room := models.Room{
		HotelID:    request.HotelID,
		RoomNumber: request.RoomNumber,
		RoomName:   request.RoomName,
		BedCount:   request.BedCount,
		Price:      request.Price,
		ImageUrl:   request.ImageUrl,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Created(c, convertToRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if uint(id) != request.ID {
		response.BadRequest(c, "Room ID does not match the ID in the request")
		return
	}

	if err := validator.ValidateRoomInput(request.RoomNumber, request.BedCount, request.Price); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.HotelID = request.HotelID
	room.RoomNumber = request.RoomNumber
	room.RoomName = request.RoomName
	room.BedCount = request.BedCount
	room.Price = request.Price
	room.ImageUrl = request.ImageUrl

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomResponse(room))
}

// DeleteRoom removes a room. Refused while the hotel would drop below
// MinRoomsPerHotel or while the room still has active bookings.
func DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	var roomCount int64
	if err := config.DB.Model(&models.Room{}).Where("hotel_id = ?", room.HotelID).Count(&roomCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if roomCount <= constants.MinRoomsPerHotel {
		response.BadRequest(c, "Hotel must keep at least one room")
		return
	}

	var activeBookings int64
	err = config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND is_cancelled = ?", room.ID, false).
		Count(&activeBookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if activeBookings > 0 {
		response.BadRequest(c, "Room still has active bookings")
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.NoContent(c)
}
