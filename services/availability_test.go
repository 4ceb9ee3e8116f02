package services

import (
	"testing"
	"time"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "partial overlap at the tail",
			aStart: date(2026, 6, 10), aEnd: date(2026, 6, 15),
			bStart: date(2026, 6, 12), bEnd: date(2026, 6, 20),
			expected: true,
		},
		{
			name:   "disjoint after",
			aStart: date(2026, 6, 10), aEnd: date(2026, 6, 15),
			bStart: date(2026, 6, 16), bEnd: date(2026, 6, 20),
			expected: false,
		},
		{
			name:   "shared boundary day counts as overlap",
			aStart: date(2026, 6, 10), aEnd: date(2026, 6, 15),
			bStart: date(2026, 6, 15), bEnd: date(2026, 6, 20),
			expected: true,
		},
		{
			name:   "contained range",
			aStart: date(2026, 6, 10), aEnd: date(2026, 6, 20),
			bStart: date(2026, 6, 12), bEnd: date(2026, 6, 14),
			expected: true,
		},
		{
			name:   "identical range",
			aStart: date(2026, 6, 10), aEnd: date(2026, 6, 15),
			bStart: date(2026, 6, 10), bEnd: date(2026, 6, 15),
			expected: true,
		},
		{
			name:   "disjoint before",
			aStart: date(2026, 6, 16), aEnd: date(2026, 6, 20),
			bStart: date(2026, 6, 10), bEnd: date(2026, 6, 15),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.expected, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.expected, RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestHasBookingConflict(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, RoomID: 7, StartDate: date(2026, 6, 10), EndDate: date(2026, 6, 15)},
	}

	assert.True(t, HasBookingConflict(bookings, date(2026, 6, 12), date(2026, 6, 20), nil))
	assert.False(t, HasBookingConflict(bookings, date(2026, 6, 16), date(2026, 6, 20), nil))
}

func TestHasBookingConflictIgnoresCancelled(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, StartDate: date(2026, 6, 10), EndDate: date(2026, 6, 15), IsCancelled: true},
	}

	assert.False(t, HasBookingConflict(bookings, date(2026, 6, 12), date(2026, 6, 14), nil))
}

func TestHasBookingConflictExcludesOwnBooking(t *testing.T) {
	bookings := []models.Booking{
		{ID: 5, StartDate: date(2026, 6, 10), EndDate: date(2026, 6, 15)},
	}

	exclude := uint(5)
	assert.False(t, HasBookingConflict(bookings, date(2026, 6, 10), date(2026, 6, 15), &exclude))

	other := uint(6)
	assert.True(t, HasBookingConflict(bookings, date(2026, 6, 10), date(2026, 6, 15), &other))
}

func TestBookedRoomIDs(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, StartDate: date(2026, 6, 10), EndDate: date(2026, 6, 15)},
		{ID: 2, RoomID: 2, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 5)},
		{ID: 3, RoomID: 3, StartDate: date(2026, 6, 12), EndDate: date(2026, 6, 13), IsCancelled: true},
	}

	booked := BookedRoomIDs(bookings, date(2026, 6, 12), date(2026, 6, 14), nil)

	assert.True(t, booked[1])
	assert.False(t, booked[2])
	assert.False(t, booked[3])
}

func TestFilterAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, RoomNumber: 101, BedCount: 2},
		{ID: 2, RoomNumber: 102, BedCount: 4},
		{ID: 3, RoomNumber: 103, BedCount: 1},
	}
	booked := map[uint]bool{2: true}

	available := FilterAvailableRooms(rooms, booked, 2)

	assert.Len(t, available, 1)
	assert.Equal(t, uint(1), available[0].ID)
}

func TestFilterAvailableRoomsNoMinBeds(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, BedCount: 1},
		{ID: 2, BedCount: 2},
	}

	available := FilterAvailableRooms(rooms, map[uint]bool{}, 0)

	assert.Len(t, available, 2)
}

func TestCanCancelBooking(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate time.Time
		expected  bool
	}{
		{"well ahead of the stay", now.Add(10 * 24 * time.Hour), true},
		{"exactly three days out", now.Add(3 * 24 * time.Hour), true},
		{"just inside three days", now.Add(3*24*time.Hour - time.Second), false},
		{"stay starts tomorrow", now.Add(24 * time.Hour), false},
		{"stay already started", now.Add(-24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := models.Booking{StartDate: tt.startDate}
			assert.Equal(t, tt.expected, CanCancelBooking(booking, now))
		})
	}
}

func TestToDateUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2026, 6, 10, 23, 45, 0, 0, loc)

	got := ToDateUTC(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 10, got.Day())
}
