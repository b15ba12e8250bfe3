package http

import (
	"time"

	"github.com/padelhub/padel-booking-backend/internal/court"
	"github.com/padelhub/padel-booking-backend/internal/pkg/request"
)

// ListCourtsRequest defines query parameters for listing courts.
type ListCourtsRequest struct {
	request.ListParams
	OnlyActive bool `form:"only_active"`
}

type CreateCourtBody struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location"`
	HourlyPrice float64 `json:"hourly_price" binding:"omitempty,min=0"`
}

type UpdateCourtBody struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	HourlyPrice *float64 `json:"hourly_price" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}

type CourtResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	HourlyPrice float64   `json:"hourly_price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		HourlyPrice: c.HourlyPrice,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
