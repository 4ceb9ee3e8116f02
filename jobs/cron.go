package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CheckInReminder sends reminders for bookings whose stay starts soon.
type CheckInReminder interface {
	SendCheckInReminders(m *melody.Melody) error
}

var checkInReminder CheckInReminder

func SetCheckInReminder(reminder CheckInReminder) {
	checkInReminder = reminder
}

// InitCronJobs registers the nightly reminder run and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if checkInReminder == nil {
			log.Println("Check-in reminder not configured, skipping run")
			return
		}
		if err := checkInReminder.SendCheckInReminders(m); err != nil {
			log.Printf("Check-in reminder run failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
