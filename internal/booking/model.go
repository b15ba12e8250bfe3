package booking

import (
	"net/http"
	"time"

	"github.com/padelhub/padel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrCourtNotFound       = apperror.New(http.StatusNotFound, "court not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrStartTimePast       = apperror.New(http.StatusConflict, "booking start time is in the past")
	ErrCancelTooLate       = apperror.New(http.StatusConflict, "less than 24 hours remain before booking start")
	ErrCourtInactive       = apperror.New(http.StatusConflict, "court is not active")
	ErrOutsideOpeningHours = apperror.New(http.StatusConflict, "booking is outside opening hours")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidDuration     = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Booking is a claim on a court for a contiguous span of time.
// ID and CreatedAt are immutable once assigned; a modification replaces
// the remaining fields wholesale via With.
type Booking struct {
	ID              int64
	CourtID         int64
	UserID          int64
	Status          Status
	StartTime       time.Time // start instant, UTC
	DurationMinutes int
	CreatedAt       time.Time
}

// EndTime is the derived end instant of the booking.
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Date returns the booking day at midnight UTC.
func (b *Booking) Date() time.Time {
	y, m, d := b.StartTime.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Interval returns the half-open [StartTime, EndTime) range of the booking.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime()}
}

// Changes holds the optional fields of a partial update.
// Nil fields retain the prior value.
type Changes struct {
	CourtID         *int64
	StartTime       *time.Time
	DurationMinutes *int
}

// With returns a copy of the booking with the given changes merged over it.
// ID, UserID, Status and CreatedAt never change here.
func (b Booking) With(ch Changes) Booking {
	if ch.CourtID != nil {
		b.CourtID = *ch.CourtID
	}
	if ch.StartTime != nil {
		b.StartTime = ch.StartTime.UTC()
	}
	if ch.DurationMinutes != nil {
		b.DurationMinutes = *ch.DurationMinutes
	}
	return b
}
