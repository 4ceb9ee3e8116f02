package services

import (
	stderrors "errors"
	"stayhub/errors"
	"stayhub/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetBookingsSorted returns bookings with room and guest detail, ordered by
// start date and then guest name. userID == 0 means no owner filter (admin
// viewing everything).
func GetBookingsSorted(db *gorm.DB, userID uint) ([]models.Booking, error) {
	query := db.Model(&models.Booking{}).
		Preload("Room").
		Preload("User").
		Joins("JOIN users ON users.id = bookings.user_id").
		Order("bookings.start_date ASC, users.first_name ASC, users.last_name ASC")

	if userID != 0 {
		query = query.Where("bookings.user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindBookingWithDetails loads one booking with its room and guest joined.
// userID == 0 skips the ownership filter; otherwise a booking owned by
// someone else is reported as not found, never leaked.
func FindBookingWithDetails(db *gorm.DB, id uint, userID uint) (*models.Booking, error) {
	query := db.Preload("Room").Preload("User").Where("bookings.id = ?", id)
	if userID != 0 {
		query = query.Where("bookings.user_id = ?", userID)
	}

	var booking models.Booking
	if err := query.First(&booking).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// CreateBooking checks for conflicts and inserts the booking in one
// transaction, holding a row lock on the room so two overlapping requests
// cannot both pass the check. The unique index on (room_id, start_date,
// end_date) backstops exact duplicates that slip through anyway.
func CreateBooking(db *gorm.DB, booking *models.Booking) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrRoomNotFound
			}
			return err
		}

		booked, err := IsRoomBooked(tx, booking.RoomID, booking.StartDate, booking.EndDate, nil)
		if err != nil {
			return err
		}
		if booked {
			return errors.ErrRoomBooked
		}

		booking.StartDate = ToDateUTC(booking.StartDate)
		booking.EndDate = ToDateUTC(booking.EndDate)

		if err := tx.Create(booking).Error; err != nil {
			if stderrors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.ErrDuplicateBooking
			}
			return err
		}
		return nil
	})
}

// UpdateBookingDates rewrites a booking's room, range and guest count under
// the same lock and conflict check as CreateBooking, excluding the booking
// itself so its unchanged range never conflicts with itself.
func UpdateBookingDates(db *gorm.DB, booking *models.Booking) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrRoomNotFound
			}
			return err
		}

		booked, err := IsRoomBooked(tx, booking.RoomID, booking.StartDate, booking.EndDate, &booking.ID)
		if err != nil {
			return err
		}
		if booked {
			return errors.ErrRoomBooked
		}

		booking.StartDate = ToDateUTC(booking.StartDate)
		booking.EndDate = ToDateUTC(booking.EndDate)
		booking.UpdatedAt = time.Now()

		if err := tx.Save(booking).Error; err != nil {
			if stderrors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.ErrDuplicateBooking
			}
			return err
		}
		return nil
	})
}

// CancelBooking soft-cancels: the row is kept, IsCancelled flips to true.
func CancelBooking(db *gorm.DB, booking *models.Booking) error {
	booking.IsCancelled = true
	return db.Save(booking).Error
}
