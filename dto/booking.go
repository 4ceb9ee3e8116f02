package dto

import (
	"time"
)

type CreateBookingRequest struct {
	RoomID     uint   `json:"roomId" binding:"required"`
	UserID     uint   `json:"userId"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	GuestCount int    `json:"guestCount" binding:"required"`
}

type UpdateBookingRequest struct {
	ID         uint   `json:"id" binding:"required"`
	RoomID     uint   `json:"roomId" binding:"required"`
	UserID     uint   `json:"userId" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	GuestCount int    `json:"guestCount" binding:"required"`
}

type BookingGuestResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type BookingRoomResponse struct {
	ID         uint    `json:"id"`
	HotelID    uint    `json:"hotelId"`
	RoomNumber int     `json:"roomNumber"`
	RoomName   string  `json:"roomName"`
	BedCount   int     `json:"bedCount"`
	Price      float64 `json:"price"`
}

type BookingResponse struct {
	ID          uint                 `json:"id"`
	Room        BookingRoomResponse  `json:"room"`
	Guest       BookingGuestResponse `json:"guest"`
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	GuestCount  int                  `json:"guestCount"`
	IsCancelled bool                 `json:"isCancelled"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
