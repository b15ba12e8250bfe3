package court

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("court not found")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidPrice = errors.New("hourly price cannot be negative")
)

// Court represents a bookable padel court.
type Court struct {
	ID          int64
	Name        string
	Location    string
	HourlyPrice float64
	IsActive    bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	OnlyActive bool
	Page       int
	PageSize   int
}
