package validator

import (
	"testing"
	"time"

	"stayhub/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("2026-06-10")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseBookingDateRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "10-06-2026", "2026/06/10", "2026-13-01", "not a date"} {
		_, err := ParseBookingDate(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, errors.IsAppError(err))
	}
}

func TestValidateBookingDates(t *testing.T) {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateBookingDates(start, start.Add(24*time.Hour)))
	assert.Error(t, ValidateBookingDates(start, start))
	assert.Error(t, ValidateBookingDates(start, start.Add(-24*time.Hour)))
}

func TestValidateGuestCount(t *testing.T) {
	assert.NoError(t, ValidateGuestCount(1))
	assert.NoError(t, ValidateGuestCount(4))
	assert.Error(t, ValidateGuestCount(0))
	assert.Error(t, ValidateGuestCount(-2))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("guest@example.com"))
	assert.Error(t, ValidateEmail("guest@"))
	assert.Error(t, ValidateEmail("guest"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
}

func TestValidatePersonalCode(t *testing.T) {
	assert.NoError(t, ValidatePersonalCode("1234567"))
	assert.NoError(t, ValidatePersonalCode("12345678901"))
	assert.Error(t, ValidatePersonalCode("123456"))
	assert.Error(t, ValidatePersonalCode("123456789012"))
	assert.Error(t, ValidatePersonalCode("12345ab"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone(""))
	assert.NoError(t, ValidatePhone("+37255512345"))
	assert.NoError(t, ValidatePhone("5551234"))
	assert.Error(t, ValidatePhone("12345"))
	assert.Error(t, ValidatePhone("phone"))
}

func TestValidateHotelInput(t *testing.T) {
	assert.NoError(t, ValidateHotelInput("Grand Hotel", "1 Main St", "", ""))
	assert.Error(t, ValidateHotelInput("", "1 Main St", "", ""))
	assert.Error(t, ValidateHotelInput("Grand Hotel", "", "", ""))
	assert.Error(t, ValidateHotelInput("Grand Hotel", "1 Main St", "bad", ""))
	assert.Error(t, ValidateHotelInput("Grand Hotel", "1 Main St", "", "bad-email"))
}

func TestValidateRoomInput(t *testing.T) {
	assert.NoError(t, ValidateRoomInput(101, 2, 79.5))
	assert.NoError(t, ValidateRoomInput(1, 1, 0))
	assert.Error(t, ValidateRoomInput(0, 2, 79.5))
	assert.Error(t, ValidateRoomInput(101, 0, 79.5))
	assert.Error(t, ValidateRoomInput(101, 2, -1))
}
