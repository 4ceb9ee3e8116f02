package models

import (
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"type:varchar(256);not null"`
	Address     string         `json:"address" gorm:"type:varchar(256);not null"`
	PhoneNumber string         `json:"phoneNumber" gorm:"type:varchar(16)"`
	Email       string         `json:"email"`
	UserID      uint           `json:"userId"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	User        User           `json:"user" gorm:"foreignKey:UserID"`
	Rooms       []Room         `json:"rooms" gorm:"foreignKey:HotelID"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
