package models

import (
	"time"
)

// Booking is a guest's reservation of one room for a date range. Bookings
// are never hard-deleted by guests; cancellation flips IsCancelled.
//
// StartDate and EndDate are date-granular and stored in UTC. The composite
// unique index is a narrow storage-level guard against exact duplicate
// ranges racing past the overlap check; arbitrary overlaps are rejected by
// the availability engine inside the booking transaction.
type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RoomID      uint      `json:"roomId" gorm:"not null;uniqueIndex:idx_bookings_room_range"`
	UserID      uint      `json:"userId" gorm:"not null"`
	StartDate   time.Time `json:"startDate" gorm:"type:date;uniqueIndex:idx_bookings_room_range"`
	EndDate     time.Time `json:"endDate" gorm:"type:date;uniqueIndex:idx_bookings_room_range"`
	GuestCount  int       `json:"guestCount" gorm:"default:1"`
	IsCancelled bool      `json:"isCancelled" gorm:"default:false"`
	Room        Room      `json:"room" gorm:"foreignKey:RoomID"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
