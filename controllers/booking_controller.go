package controllers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

var wsHub *melody.Melody

// SetWebSocketHub injects the websocket hub used for booking event
// broadcasts.
func SetWebSocketHub(m *melody.Melody) {
	wsHub = m
}

func broadcastBookingEvent(event string, booking models.Booking) {
	if wsHub == nil {
		return
	}
	payload, err := json.Marshal(gin.H{
		"event":     event,
		"bookingId": booking.ID,
		"roomId":    booking.RoomID,
		"startDate": booking.StartDate.Format(constants.DateLayout),
		"endDate":   booking.EndDate.Format(constants.DateLayout),
	})
	if err != nil {
		return
	}
	if err := wsHub.Broadcast(payload); err != nil {
		log.Printf("Failed to broadcast booking event: %v", err)
	}
}

func bookingsCacheKey(scopeUserID uint) string {
	return fmt.Sprintf("bookings:user:%d", scopeUserID)
}

func invalidateBookingCaches(ownerID uint) {
	err := services.DeleteFromRedis(config.Ctx, config.RedisClient,
		bookingsCacheKey(0), bookingsCacheKey(ownerID))
	if err != nil {
		log.Printf("Failed to invalidate booking caches: %v", err)
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID: booking.ID,
		Room: dto.BookingRoomResponse{
			ID:         booking.Room.ID,
			HotelID:    booking.Room.HotelID,
			RoomNumber: booking.Room.RoomNumber,
			RoomName:   booking.Room.RoomName,
			BedCount:   booking.Room.BedCount,
			Price:      booking.Room.Price,
		},
		Guest: dto.BookingGuestResponse{
			ID:        booking.User.ID,
			FirstName: booking.User.FirstName,
			LastName:  booking.User.LastName,
			Email:     booking.User.Email,
		},
		StartDate:   booking.StartDate.Format(constants.DateLayout),
		EndDate:     booking.EndDate.Format(constants.DateLayout),
		GuestCount:  booking.GuestCount,
		IsCancelled: booking.IsCancelled,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

// GetBookings lists bookings. Admins see everything with viewAll=true
// (the default) and only their own bookings with viewAll=false; guests
// always see only their own.
func GetBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	viewAll := c.DefaultQuery("viewAll", "true") == "true"

	scopeUserID := currentUserID
	if currentUserRole == constants.RoleAdmin && viewAll {
		scopeUserID = 0
	}

	cacheKey := bookingsCacheKey(scopeUserID)

	var bookings []models.Booking
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &bookings); err != nil || len(bookings) == 0 {
		var dbErr error
		bookings, dbErr = services.GetBookingsSorted(config.DB, scopeUserID)
		if dbErr != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, bookings, 10*time.Minute); err != nil {
			log.Printf("Failed to cache bookings: %v", err)
		}
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}

// GetBookingDetail returns one booking with room and guest joined. Guests
// can only reach their own bookings; anything else is a plain not-found.
func GetBookingDetail(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	scopeUserID := currentUserID
	if currentUserRole == constants.RoleAdmin {
		scopeUserID = 0
	}

	booking, err := services.FindBookingWithDetails(config.DB, uint(id), scopeUserID)
	if err != nil {
		if stderrors.Is(err, errors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// CreateBooking books a room. Non-admin callers always book for
// themselves, whatever user id the payload claims.
func CreateBooking(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ownerID := currentUserID
	if currentUserRole == constants.RoleAdmin && request.UserID != 0 {
		ownerID = request.UserID
	}

	var owner models.User
	if err := config.DB.First(&owner, ownerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	startDate, err := validator.ParseBookingDate(request.StartDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	endDate, err := validator.ParseBookingDate(request.EndDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateBookingDates(startDate, endDate); err != nil {
		response.BadRequest(c, "End date cannot be earlier or equal to start date")
		return
	}
	if err := validator.ValidateGuestCount(request.GuestCount); err != nil {
		response.BadRequest(c, "Guest count must be at least 1")
		return
	}

	guestCountOk, err := services.IsGuestCountValid(config.DB, request.RoomID, request.GuestCount)
	if err != nil {
		response.ServerError(c)
		return
	}
	if !guestCountOk {
		response.BadRequest(c, "Guest count exceeds the room's bed count")
		return
	}

	booking := models.Booking{
		RoomID:     request.RoomID,
		UserID:     ownerID,
		StartDate:  startDate,
		EndDate:    endDate,
		GuestCount: request.GuestCount,
	}

	if err := services.CreateBooking(config.DB, &booking); err != nil {
		switch {
		case stderrors.Is(err, errors.ErrRoomNotFound):
			response.NotFound(c)
		case stderrors.Is(err, errors.ErrRoomBooked):
			response.BadRequest(c, "Room is already booked for the selected dates")
		case stderrors.Is(err, errors.ErrDuplicateBooking):
			response.Conflict(c, "Room is already booked for the selected dates")
		default:
			response.ServerError(c)
		}
		return
	}

	if err := config.DB.Preload("Room").Preload("User").First(&booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(booking.UserID)
	broadcastBookingEvent("booking.created", booking)

	if booking.User.Email != "" {
		err := services.SendBookingEmail(
			booking.User.Email,
			booking.ID,
			booking.Room.RoomNumber,
			booking.StartDate.Format(constants.DateLayout),
			booking.EndDate.Format(constants.DateLayout),
		)
		if err != nil {
			log.Printf("Failed to send booking email: %v", err)
		}
	}

	response.Created(c, convertToBookingResponse(booking))
}

// UpdateBooking rewrites a booking's room, dates, owner and guest count.
// Admin only; the booking's own id is excluded from the conflict check so
// an unchanged range never conflicts with itself.
func UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if uint(id) != request.ID {
		response.BadRequest(c, "Booking ID does not match the ID in the request")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}
	previousOwnerID := booking.UserID

	var owner models.User
	if err := config.DB.First(&owner, request.UserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	startDate, err := validator.ParseBookingDate(request.StartDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	endDate, err := validator.ParseBookingDate(request.EndDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateBookingDates(startDate, endDate); err != nil {
		response.BadRequest(c, "End date cannot be earlier or equal to start date")
		return
	}
	if err := validator.ValidateGuestCount(request.GuestCount); err != nil {
		response.BadRequest(c, "Guest count must be at least 1")
		return
	}

	guestCountOk, err := services.IsGuestCountValid(config.DB, request.RoomID, request.GuestCount)
	if err != nil {
		response.ServerError(c)
		return
	}
	if !guestCountOk {
		response.BadRequest(c, "Guest count exceeds the room's bed count")
		return
	}

	booking.RoomID = request.RoomID
	booking.UserID = request.UserID
	booking.StartDate = startDate
	booking.EndDate = endDate
	booking.GuestCount = request.GuestCount

	if err := services.UpdateBookingDates(config.DB, &booking); err != nil {
		switch {
		case stderrors.Is(err, errors.ErrRoomNotFound):
			response.NotFound(c)
		case stderrors.Is(err, errors.ErrRoomBooked):
			response.BadRequest(c, "Room is already booked for the selected dates")
		case stderrors.Is(err, errors.ErrDuplicateBooking):
			response.Conflict(c, "Room is already booked for the selected dates")
		default:
			response.ServerError(c)
		}
		return
	}

	if err := config.DB.Preload("Room").Preload("User").First(&booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(previousOwnerID)
	invalidateBookingCaches(booking.UserID)
	broadcastBookingEvent("booking.updated", booking)

	response.Success(c, convertToBookingResponse(booking))
}

// CancelBooking soft-cancels a booking. Owners may cancel only while the
// stay starts at least BookingCancellationDaysLimit days out; admins may
// cancel any booking at any time.
func CancelBooking(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	scopeUserID := currentUserID
	if currentUserRole == constants.RoleAdmin {
		scopeUserID = 0
	}

	booking, err := services.FindBookingWithDetails(config.DB, uint(id), scopeUserID)
	if err != nil {
		if stderrors.Is(err, errors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if booking.IsCancelled {
		response.BadRequest(c, "Booking is already cancelled")
		return
	}

	if currentUserRole != constants.RoleAdmin && !services.CanCancelBooking(*booking, time.Now().UTC()) {
		response.Forbidden(c, fmt.Sprintf(
			"Booking can only be cancelled at least %d days before the start date",
			constants.BookingCancellationDaysLimit,
		))
		return
	}

	if err := services.CancelBooking(config.DB, booking); err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(booking.UserID)
	broadcastBookingEvent("booking.cancelled", *booking)

	response.NoContent(c)
}

// DeleteBooking hard-deletes a booking. Admin only; guests never delete,
// they cancel.
func DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(booking.UserID)

	response.NoContent(c)
}
