package user

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository for deterministic tests.
type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]User
	lastID int64
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[int64]User)}
}

func (r *memoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memoryRepository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	r.lastID++
	u.ID = r.lastID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.byID[u.ID] = *u
	return nil
}

func (r *memoryRepository) UpdateLastLogin(_ context.Context, id int64, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	r.byID[id] = u
	return nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*User
	for _, u := range r.byID {
		copied := u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	total := len(users)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	if offset >= len(users) {
		return nil, total, nil
	}
	end := offset + filter.PageSize
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], total, nil
}
