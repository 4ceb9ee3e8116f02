package constants

// User roles
const (
	RoleGuest = 0
	RoleAdmin = 1
)

// Booking related constants
const (
	// BookingCancellationDaysLimit is the minimum lead time, in days, before
	// a stay starts within which a guest may still self-cancel.
	BookingCancellationDaysLimit = 3
)

// Hotel related constants
const (
	MinRoomsPerHotel = 1
	MaxRoomsPerHotel = 3
)

// DateLayout is the wire format for booking dates. Bookings are
// date-granular, time of day is never persisted.
const DateLayout = "2006-01-02"
