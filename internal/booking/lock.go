package booking

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// scheduleLocks serializes the check-then-write step per (court, day) pair.
// Without this, two concurrent creations for the same slot can both pass
// the conflict check and both be admitted. Different courts and different
// days proceed in parallel.
type scheduleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newScheduleLocks() *scheduleLocks {
	return &scheduleLocks{locks: make(map[string]*sync.Mutex)}
}

func scheduleKey(courtID int64, date time.Time) string {
	return fmt.Sprintf("%d_%s", courtID, date.UTC().Format("2006-01-02"))
}

func (s *scheduleLocks) get(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// acquire locks all given keys in sorted order (deduplicated) and returns
// a release function. Sorting keeps lock order consistent across callers
// so a reschedule touching two schedules cannot deadlock.
func (s *scheduleLocks) acquire(keys ...string) func() {
	sort.Strings(keys)
	var held []*sync.Mutex
	var prev string
	for i, k := range keys {
		if i > 0 && k == prev {
			continue
		}
		prev = k
		l := s.get(k)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
