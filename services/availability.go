package services

import (
	"stayhub/constants"
	"stayhub/models"
	"time"

	"gorm.io/gorm"
)

// The availability engine decides whether a room can be booked for a date
// range. All date comparisons are date-granular, in UTC, with inclusive
// boundaries: a booking ending on the 15th still occupies the 15th, so a
// new stay may start on the 16th at the earliest.

// ToDateUTC strips the time of day and normalizes to UTC.
func ToDateUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RangesOverlap reports whether [aStart, aEnd] and [bStart, bEnd] intersect
// under inclusive-boundary semantics: aStart <= bEnd && bStart <= aEnd.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// HasBookingConflict scans bookings for one that blocks [startDate, endDate].
// Cancelled bookings never conflict, and neither does the booking identified
// by excludeBookingID (the booking being edited must not conflict with itself).
func HasBookingConflict(bookings []models.Booking, startDate, endDate time.Time, excludeBookingID *uint) bool {
	for _, b := range bookings {
		if b.IsCancelled {
			continue
		}
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if RangesOverlap(ToDateUTC(b.StartDate), ToDateUTC(b.EndDate), startDate, endDate) {
			return true
		}
	}
	return false
}

// IsRoomBooked reports whether the room has a non-cancelled booking
// overlapping [startDate, endDate]. A missing room simply has no bookings.
func IsRoomBooked(db *gorm.DB, roomID uint, startDate, endDate time.Time, excludeBookingID *uint) (bool, error) {
	var bookings []models.Booking
	query := db.Where("room_id = ? AND is_cancelled = false", roomID)
	if excludeBookingID != nil {
		query = query.Where("id <> ?", *excludeBookingID)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return false, err
	}

	return HasBookingConflict(bookings, ToDateUTC(startDate), ToDateUTC(endDate), nil), nil
}

// IsGuestCountValid checks the requested guest count against the room's bed
// capacity. A missing room is never valid.
func IsGuestCountValid(db *gorm.DB, roomID uint, guestCount int) (bool, error) {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return guestCount <= room.BedCount, nil
}

// BookedRoomIDs collects ids of rooms blocked for [startDate, endDate] by
// the given bookings.
func BookedRoomIDs(bookings []models.Booking, startDate, endDate time.Time, excludeBookingID *uint) map[uint]bool {
	booked := make(map[uint]bool)
	for _, b := range bookings {
		if b.IsCancelled {
			continue
		}
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if RangesOverlap(ToDateUTC(b.StartDate), ToDateUTC(b.EndDate), startDate, endDate) {
			booked[b.RoomID] = true
		}
	}
	return booked
}

// FilterAvailableRooms returns the rooms with enough beds whose id is not in
// the booked set, keeping the input order.
func FilterAvailableRooms(rooms []models.Room, booked map[uint]bool, minBeds int) []models.Room {
	available := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if booked[r.ID] {
			continue
		}
		if r.BedCount < minBeds {
			continue
		}
		available = append(available, r)
	}
	return available
}

// GetAvailableRooms computes the rooms open for booking. With no dates it
// degenerates to a capacity filter. Results are ordered by room number so
// listings stay stable across calls.
//
// Callers validate that startDate and endDate are either both set or both
// nil, and that startDate < endDate.
func GetAvailableRooms(db *gorm.DB, startDate, endDate *time.Time, guestCount *int, excludeBookingID *uint) ([]models.Room, error) {
	minBeds := 0
	if guestCount != nil {
		minBeds = *guestCount
	}

	var rooms []models.Room
	if err := db.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}

	booked := map[uint]bool{}
	if startDate != nil && endDate != nil {
		start := ToDateUTC(*startDate)
		end := ToDateUTC(*endDate)

		var bookings []models.Booking
		query := db.Where("is_cancelled = false").Where("start_date <= ? AND end_date >= ?", end, start)
		if excludeBookingID != nil {
			query = query.Where("id <> ?", *excludeBookingID)
		}
		if err := query.Find(&bookings).Error; err != nil {
			return nil, err
		}

		booked = BookedRoomIDs(bookings, start, end, nil)
	}

	return FilterAvailableRooms(rooms, booked, minBeds), nil
}

// CanCancelBooking reports whether the stay starts far enough in the future
// for self-service cancellation: at least BookingCancellationDaysLimit days
// from now, boundary inclusive. The admin override lives at the controller
// layer, not here.
func CanCancelBooking(booking models.Booking, now time.Time) bool {
	limit := now.Add(time.Duration(constants.BookingCancellationDaysLimit) * 24 * time.Hour)
	return !booking.StartDate.Before(limit)
}
