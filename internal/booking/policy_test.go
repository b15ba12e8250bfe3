package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/padelhub/padel-booking-backend/internal/booking"
)

func TestCanCancel(t *testing.T) {
	start := time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "25 hours before start is permitted",
			now:  start.Add(-25 * time.Hour),
			want: true,
		},
		{
			name: "exactly 24 hours before start is permitted",
			now:  start.Add(-24 * time.Hour),
			want: true,
		},
		{
			name: "23 hours before start is rejected",
			now:  start.Add(-23 * time.Hour),
			want: false,
		},
		{
			name: "after start is rejected",
			now:  start.Add(time.Hour),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.CanCancel(start, tt.now))
			// Repeated evaluation with the same inputs never changes the answer.
			assert.Equal(t, tt.want, booking.CanCancel(start, tt.now))
		})
	}
}
