package services

import (
	"encoding/json"
	"stayhub/constants"
	"stayhub/models"
	"stayhub/services/logger"
	"time"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// ReminderService finds bookings whose stay starts within the reminder
// window and notifies their guests. Wired into the nightly cron via
// jobs.SetCheckInReminder.
type ReminderService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReminderService(db *gorm.DB, log logger.Logger) *ReminderService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReminderService{DB: db, Logger: log}
}

// SendCheckInReminders emails every guest whose booking starts tomorrow
// and broadcasts the reminders over the websocket hub. Send failures are
// logged per booking so one bad address does not stop the run.
func (s *ReminderService) SendCheckInReminders(m *melody.Melody) error {
	tomorrow := ToDateUTC(time.Now().UTC().Add(24 * time.Hour))

	var bookings []models.Booking
	err := s.DB.Preload("Room").Preload("User").
		Where("start_date = ? AND is_cancelled = ?", tomorrow, false).
		Find(&bookings).Error
	if err != nil {
		return err
	}

	s.Logger.Info("Sending check-in reminders for %d bookings", len(bookings))

	for _, booking := range bookings {
		if booking.User.Email == "" {
			continue
		}
		err := SendCheckInReminderEmail(
			booking.User.Email,
			booking.Room.RoomNumber,
			booking.StartDate.Format(constants.DateLayout),
		)
		if err != nil {
			s.Logger.Error("Failed to send check-in reminder for booking %d: %v", booking.ID, err)
			continue
		}

		if m != nil {
			payload, err := json.Marshal(map[string]interface{}{
				"event":     "booking.reminder",
				"bookingId": booking.ID,
				"startDate": booking.StartDate.Format(constants.DateLayout),
			})
			if err == nil {
				if err := m.Broadcast(payload); err != nil {
					s.Logger.Error("Failed to broadcast reminder for booking %d: %v", booking.ID, err)
				}
			}
		}
	}

	return nil
}
