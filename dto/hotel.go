package dto

import (
	"stayhub/models"
)

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Amenities   []string `json:"amenities"`
}

type UpdateHotelRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Amenities   []string `json:"amenities"`
}

type HotelResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	UserID      uint           `json:"userId"`
	Amenities   []string       `json:"amenities"`
	Rooms       []RoomResponse `json:"rooms,omitempty"`
}

// ScoredHotel pairs a hotel with its fuzzy-search score.
type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}
