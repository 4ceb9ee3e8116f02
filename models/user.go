package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FirstName    string    `gorm:"type:varchar(64);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(64);not null" json:"lastName"`
	Email        string    `gorm:"unique" json:"email"`
	Password     string    `json:"-"`
	PhoneNumber  string    `gorm:"type:varchar(16)" json:"phoneNumber"`
	PersonalCode string    `gorm:"uniqueIndex;type:varchar(64);not null" json:"personalCode"`
	Role         int       `gorm:"default:0" json:"role"`
	Hotels       []Hotel   `json:"hotels,omitempty" gorm:"foreignKey:UserID"`
	Bookings     []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
