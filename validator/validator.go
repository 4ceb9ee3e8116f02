package validator

import (
	"regexp"
	"stayhub/constants"
	"stayhub/errors"
	"time"
)

// ParseBookingDate parses a wire-format date (YYYY-MM-DD) into a UTC
// midnight timestamp.
func ParseBookingDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(constants.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date, expected format YYYY-MM-DD", err)
	}
	return parsed, nil
}

// ValidateBookingDates enforces that the end date is strictly after the
// start date.
func ValidateBookingDates(startDate, endDate time.Time) error {
	if !endDate.After(startDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "End date cannot be earlier or equal to start date", nil)
	}
	return nil
}

// ValidateGuestCount enforces a positive guest count.
func ValidateGuestCount(guestCount int) error {
	if guestCount < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Guest count must be at least 1", nil)
	}
	return nil
}

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	return nil
}

// ValidatePassword checks minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must be at least 8 characters", nil)
	}
	return nil
}

// ValidatePersonalCode checks the national personal code format.
func ValidatePersonalCode(code string) error {
	codeRegex := regexp.MustCompile(`^[0-9]{7,11}$`)
	if !codeRegex.MatchString(code) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid personal code", nil)
	}
	return nil
}

// isValidPhone checks phone number format.
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return phoneRegex.MatchString(phone)
}

// ValidatePhone checks phone number format; empty is allowed.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid phone number", nil)
	}
	return nil
}

// ValidateHotelInput checks hotel reference data.
func ValidateHotelInput(name, address, phoneNumber, email string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel name must not be empty", nil)
	}
	if address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel address must not be empty", nil)
	}
	if err := ValidatePhone(phoneNumber); err != nil {
		return err
	}
	if email != "" {
		if err := ValidateEmail(email); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRoomInput checks room reference data.
func ValidateRoomInput(roomNumber, bedCount int, price float64) error {
	if roomNumber < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Room number must be positive", nil)
	}
	if bedCount < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Bed count must be at least 1", nil)
	}
	if price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must not be negative", nil)
	}
	return nil
}
