package booking

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository. It backs deterministic
// tests and mirrors the store semantics of the persistent implementation:
// IDs are assigned monotonically, one greater than the current maximum,
// starting at 1.
type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]Booking
	lastID int64
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[int64]Booking)}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	b.ID = r.lastID
	r.byID[b.ID] = *b
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *memoryRepository) ListActive(_ context.Context, courtID int64, date time.Time) ([]*Booking, error) {
	dayStart := date.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*Booking
	for _, b := range r.byID {
		if b.CourtID != courtID || b.Status != StatusActive {
			continue
		}
		if b.StartTime.Before(dayStart) || !b.StartTime.Before(dayEnd) {
			continue
		}
		copied := b
		bookings = append(bookings, &copied)
	}
	sortByStart(bookings)
	return bookings, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*Booking
	for _, b := range r.byID {
		if b.UserID != userID {
			continue
		}
		copied := b
		bookings = append(bookings, &copied)
	}
	sortByStart(bookings)
	return bookings, nil
}

func (r *memoryRepository) Update(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[b.ID]; !ok {
		return ErrNotFound
	}
	r.byID[b.ID] = *b
	return nil
}

func sortByStart(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
}
