package court

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository for deterministic tests.
type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]Court
	lastID int64
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[int64]Court)}
}

func (r *memoryRepository) Create(_ context.Context, c *Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	c.ID = r.lastID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*Court, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Court, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var courts []*Court
	for _, c := range r.byID {
		if filter.OnlyActive && !c.IsActive {
			continue
		}
		copied := c
		courts = append(courts, &copied)
	}
	sort.Slice(courts, func(i, j int) bool { return courts[i].Name < courts[j].Name })

	total := len(courts)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	if offset >= len(courts) {
		return nil, total, nil
	}
	end := offset + filter.PageSize
	if end > len(courts) {
		end = len(courts)
	}
	return courts[offset:end], total, nil
}

func (r *memoryRepository) Update(_ context.Context, c *Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
