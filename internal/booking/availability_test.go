package booking_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelhub/padel-booking-backend/internal/booking"
)

func activeBooking(startHour, startMin, durationMinutes int) *booking.Booking {
	return &booking.Booking{
		Status:          booking.StatusActive,
		StartTime:       at(startHour, startMin),
		DurationMinutes: durationMinutes,
	}
}

func TestComputeFreeWindows(t *testing.T) {
	baseDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	open := booking.OpeningHours(baseDate)

	tests := []struct {
		name     string
		bookings []*booking.Booking
		want     []booking.Interval
	}{
		{
			name:     "no bookings, full day available",
			bookings: []*booking.Booking{},
			want:     []booking.Interval{span(9, 0, 22, 0)},
		},
		{
			name:     "one booking in the middle",
			bookings: []*booking.Booking{activeBooking(17, 0, 90)},
			want: []booking.Interval{
				span(9, 0, 17, 0),
				span(18, 30, 22, 0),
			},
		},
		{
			name: "cancelled booking is ignored",
			bookings: []*booking.Booking{
				{
					Status:          booking.StatusCancelled,
					StartTime:       at(10, 0),
					DurationMinutes: 60,
				},
			},
			want: []booking.Interval{span(9, 0, 22, 0)},
		},
		{
			name:     "booking at opening time",
			bookings: []*booking.Booking{activeBooking(9, 0, 60)},
			want:     []booking.Interval{span(10, 0, 22, 0)},
		},
		{
			name:     "booking ending at closing time",
			bookings: []*booking.Booking{activeBooking(21, 0, 60)},
			want:     []booking.Interval{span(9, 0, 21, 0)},
		},
		{
			name:     "booking covers entire day",
			bookings: []*booking.Booking{activeBooking(9, 0, 13 * 60)},
			want:     nil,
		},
		{
			name: "unsorted input is sorted by start time",
			bookings: []*booking.Booking{
				activeBooking(14, 0, 120),
				activeBooking(10, 0, 120),
			},
			want: []booking.Interval{
				span(9, 0, 10, 0),
				span(12, 0, 14, 0),
				span(16, 0, 22, 0),
			},
		},
		{
			name: "back to back bookings leave no gap between them",
			bookings: []*booking.Booking{
				activeBooking(10, 0, 60),
				activeBooking(11, 0, 60),
			},
			want: []booking.Interval{
				span(9, 0, 10, 0),
				span(12, 0, 22, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.ComputeFreeWindows(open, tt.bookings)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The free windows plus the booking intervals must exactly tile the
// opening hours, with no gaps and no overlaps.
func TestComputeFreeWindowsTiling(t *testing.T) {
	baseDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	open := booking.OpeningHours(baseDate)

	bookings := []*booking.Booking{
		activeBooking(12, 30, 45),
		activeBooking(9, 0, 60),
		activeBooking(18, 30, 30),
		activeBooking(21, 0, 60),
	}

	pieces := booking.ComputeFreeWindows(open, bookings)
	for _, b := range bookings {
		pieces = append(pieces, b.Interval())
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].Start.Before(pieces[j].Start) })

	require.NotEmpty(t, pieces)
	assert.True(t, pieces[0].Start.Equal(open.Start))
	for i := 1; i < len(pieces); i++ {
		assert.True(t, pieces[i].Start.Equal(pieces[i-1].End),
			"piece %d must start where piece %d ends", i, i-1)
	}
	assert.True(t, pieces[len(pieces)-1].End.Equal(open.End))
}

func TestFitsAny(t *testing.T) {
	windows := []booking.Interval{
		span(9, 0, 17, 0),
		span(18, 30, 22, 0),
	}

	assert.True(t, booking.FitsAny(span(9, 0, 17, 0), windows), "a candidate equal to a window fits")
	assert.True(t, booking.FitsAny(span(10, 0, 11, 0), windows))
	assert.True(t, booking.FitsAny(span(18, 30, 19, 0), windows))
	assert.False(t, booking.FitsAny(span(16, 30, 17, 30), windows), "straddles the booked slot")
	assert.False(t, booking.FitsAny(span(17, 0, 18, 0), windows))
	assert.False(t, booking.FitsAny(span(8, 0, 9, 30), windows))
}
