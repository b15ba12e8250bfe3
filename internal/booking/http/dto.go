package http

import (
	"time"

	"github.com/padelhub/padel-booking-backend/internal/booking"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// CreateBookingBody is the payload for POST /v1/bookings.
type CreateBookingBody struct {
	CourtID         int64  `json:"court_id" binding:"required,min=1"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

// Start parses the date and start_time fields into a single UTC instant.
func (b *CreateBookingBody) Start() (time.Time, error) {
	return parseStart(b.Date, b.StartTime)
}

// UpdateBookingBody is the payload for PATCH /v1/bookings/:id.
// Absent fields keep their current values. Date and start_time travel
// together; providing one without the other is rejected.
type UpdateBookingBody struct {
	CourtID         *int64  `json:"court_id" binding:"omitempty,min=1"`
	Date            *string `json:"date"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1"`
}

// Start parses the optional date/start_time pair. It returns nil when
// neither field is present.
func (b *UpdateBookingBody) Start() (*time.Time, error) {
	if b.Date == nil && b.StartTime == nil {
		return nil, nil
	}
	if b.Date == nil || b.StartTime == nil {
		return nil, errIncompleteStart
	}
	t, err := parseStart(*b.Date, *b.StartTime)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseStart(date, clock string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// BookingResponse is the shape of a booking returned by the API.
type BookingResponse struct {
	ID              int64     `json:"id"`
	CourtID         int64     `json:"court_id"`
	UserID          int64     `json:"user_id"`
	Status          string    `json:"status"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CourtID:         b.CourtID,
		UserID:          b.UserID,
		Status:          string(b.Status),
		Date:            b.Date().Format(dateLayout),
		StartTime:       b.StartTime.Format(timeLayout),
		EndTime:         b.EndTime().Format(timeLayout),
		DurationMinutes: b.DurationMinutes,
		CreatedAt:       b.CreatedAt,
	}
}

// FreeWindowResponse is one unoccupied span within opening hours.
type FreeWindowResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailabilityResponse is the free schedule of a court on one day.
type AvailabilityResponse struct {
	CourtID     int64                `json:"court_id"`
	Date        string               `json:"date"`
	FreeWindows []FreeWindowResponse `json:"free_windows"`
}

func NewAvailabilityResponse(a *booking.Availability) AvailabilityResponse {
	windows := make([]FreeWindowResponse, len(a.FreeWindows))
	for i, w := range a.FreeWindows {
		windows[i] = FreeWindowResponse{
			StartTime: w.Start.Format(timeLayout),
			EndTime:   w.End.Format(timeLayout),
		}
	}
	return AvailabilityResponse{
		CourtID:     a.CourtID,
		Date:        a.Date.Format(dateLayout),
		FreeWindows: windows,
	}
}
