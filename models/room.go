package models

import (
	"fmt"
	"time"
)

type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	HotelID    uint      `json:"hotelId" gorm:"not null"`
	RoomNumber int       `json:"roomNumber"`
	RoomName   string    `json:"roomName"`
	BedCount   int       `json:"bedCount"`
	Price      float64   `json:"price"`
	ImageUrl   string    `json:"imageUrl"`
	Hotel      Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) Validate() error {
	if r.HotelID == 0 {
		return fmt.Errorf("room must belong to a hotel")
	}
	if r.BedCount < 1 {
		return fmt.Errorf("invalid bed count: %d, must be at least 1", r.BedCount)
	}
	if r.Price < 0 {
		return fmt.Errorf("invalid price: %f, must not be negative", r.Price)
	}
	return nil
}
