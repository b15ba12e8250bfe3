package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/padelhub/padel-booking-backend/internal/booking"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 15, hour, min, 0, 0, time.UTC)
}

func span(startHour, startMin, endHour, endMin int) booking.Interval {
	return booking.Interval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    booking.Interval
		b    booking.Interval
		want bool
	}{
		{
			name: "disjoint intervals do not overlap",
			a:    span(9, 0, 10, 0),
			b:    span(11, 0, 12, 0),
			want: false,
		},
		{
			name: "touching intervals do not overlap",
			a:    span(9, 0, 10, 0),
			b:    span(10, 0, 11, 0),
			want: false,
		},
		{
			name: "partial overlap",
			a:    span(9, 0, 10, 30),
			b:    span(10, 0, 11, 0),
			want: true,
		},
		{
			name: "containment is overlap",
			a:    span(9, 0, 12, 0),
			b:    span(10, 0, 11, 0),
			want: true,
		},
		{
			name: "identical intervals overlap",
			a:    span(9, 0, 10, 0),
			b:    span(9, 0, 10, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	window := span(9, 0, 17, 0)

	assert.True(t, window.Contains(span(9, 0, 17, 0)), "a window contains itself")
	assert.True(t, window.Contains(span(9, 0, 10, 0)))
	assert.True(t, window.Contains(span(16, 0, 17, 0)))
	assert.False(t, window.Contains(span(8, 30, 10, 0)))
	assert.False(t, window.Contains(span(16, 30, 17, 30)))
}

func TestIntervalDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, span(17, 0, 18, 30).Duration())
	assert.True(t, span(9, 0, 9, 1).IsValid())
	assert.False(t, span(9, 0, 9, 0).IsValid())
}
