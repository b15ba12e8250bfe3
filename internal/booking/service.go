package booking

import (
	"context"
	"errors"
	"time"

	"github.com/padelhub/padel-booking-backend/internal/court"
)

type CreateRequest struct {
	UserID          int64
	CourtID         int64
	StartTime       time.Time
	DurationMinutes int
}

type UpdateRequest struct {
	CourtID         *int64
	StartTime       *time.Time
	DurationMinutes *int
}

type Service interface {
	// Availability computes the free windows of a court on the given day.
	Availability(ctx context.Context, courtID int64, date time.Time) (*Availability, error)
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*Booking, error)
	// Update applies a partial modification. Unset fields keep their prior
	// values; the record is replaced wholesale, never mutated in place.
	Update(ctx context.Context, id int64, req UpdateRequest, requesterID int64, isAdmin bool) (*Booking, error)
	// Cancel marks the booking cancelled. Cancelled records are retained
	// but excluded from all availability and conflict computations.
	Cancel(ctx context.Context, id int64, requesterID int64, isAdmin bool) error
}

type service struct {
	repo         Repository
	courtService court.Service
	clock        Clock
	locks        *scheduleLocks
}

func NewService(repo Repository, courtService court.Service, clock Clock) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		clock:        clock,
		locks:        newScheduleLocks(),
	}
}

// checkCourt verifies the court exists and is open for booking.
func (s *service) checkCourt(ctx context.Context, courtID int64) error {
	c, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return ErrCourtNotFound
		}
		return err
	}
	if !c.IsActive {
		return ErrCourtInactive
	}
	return nil
}

func (s *service) Availability(ctx context.Context, courtID int64, date time.Time) (*Availability, error) {
	if _, err := s.courtService.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	bookings, err := s.repo.ListActive(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	open := OpeningHours(date)
	return &Availability{
		CourtID:     courtID,
		Date:        open.Start.Truncate(24 * time.Hour),
		FreeWindows: ComputeFreeWindows(open, bookings),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	now := s.clock.Now()
	start := req.StartTime.UTC()
	if !start.After(now) {
		return nil, ErrStartTimePast
	}

	candidate := NewInterval(start, time.Duration(req.DurationMinutes)*time.Minute)
	open := OpeningHours(start)
	if !open.Contains(candidate) {
		return nil, ErrOutsideOpeningHours
	}

	if err := s.checkCourt(ctx, req.CourtID); err != nil {
		return nil, err
	}

	// Conflict check and insert must be atomic per (court, day) or two
	// concurrent requests can both be admitted into the same slot.
	release := s.locks.acquire(scheduleKey(req.CourtID, start))
	defer release()

	bookings, err := s.repo.ListActive(ctx, req.CourtID, start)
	if err != nil {
		return nil, err
	}
	if !FitsAny(candidate, ComputeFreeWindows(open, bookings)) {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		CourtID:         req.CourtID,
		UserID:          req.UserID,
		Status:          StatusActive,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest, requesterID int64, isAdmin bool) (*Booking, error) {
	// The schedule locks are keyed by the booking's current slot, which is
	// only known after reading it. The read happens without the lock, so
	// commitUpdate re-reads under the lock and reports a retry when the
	// booking changed in between.
	for {
		b, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// A cancelled booking is logically gone from the active schedule.
		if b.Status == StatusCancelled {
			return nil, ErrNotFound
		}

		if b.UserID != requesterID && !isAdmin {
			return nil, ErrPermissionDenied
		}

		merged := b.With(Changes{
			CourtID:         req.CourtID,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
		})
		if merged.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}

		now := s.clock.Now()
		if !merged.StartTime.After(now) {
			return nil, ErrStartTimePast
		}

		// Moving the reserved start counts as giving up the old slot, so the
		// cancellation cutoff applies to the original start time.
		if req.StartTime != nil && !merged.StartTime.Equal(b.StartTime) && !CanCancel(b.StartTime, now) {
			return nil, ErrCancelTooLate
		}

		candidate := merged.Interval()
		open := OpeningHours(merged.StartTime)
		if !open.Contains(candidate) {
			return nil, ErrOutsideOpeningHours
		}

		if merged.CourtID != b.CourtID {
			if err := s.checkCourt(ctx, merged.CourtID); err != nil {
				return nil, err
			}
		}

		committed, err := s.commitUpdate(ctx, b, &merged)
		if err != nil {
			return nil, err
		}
		if committed {
			return &merged, nil
		}
	}
}

// commitUpdate writes merged while holding the schedule locks of both the
// old and the new slot. The booking is re-read under the locks; if it no
// longer matches the pre-lock snapshot the write is abandoned and the
// caller revalidates from scratch.
func (s *service) commitUpdate(ctx context.Context, b *Booking, merged *Booking) (bool, error) {
	release := s.locks.acquire(
		scheduleKey(b.CourtID, b.StartTime),
		scheduleKey(merged.CourtID, merged.StartTime),
	)
	defer release()

	cur, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return false, err
	}
	if cur.Status == StatusCancelled {
		return false, ErrNotFound
	}
	if cur.CourtID != b.CourtID || !cur.StartTime.Equal(b.StartTime) || cur.DurationMinutes != b.DurationMinutes {
		return false, nil
	}

	// The booking under modification occupies a slot of its own, so free
	// windows are useless here; test pairwise against the other active
	// bookings instead, excluding this booking by identifier.
	candidate := merged.Interval()
	others, err := s.repo.ListActive(ctx, merged.CourtID, merged.StartTime)
	if err != nil {
		return false, err
	}
	for _, other := range others {
		if other.ID == b.ID {
			continue
		}
		if candidate.Overlaps(other.Interval()) {
			return false, ErrTimeConflict
		}
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) Cancel(ctx context.Context, id int64, requesterID int64, isAdmin bool) error {
	for {
		b, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b.Status == StatusCancelled {
			return ErrNotFound
		}

		if b.UserID != requesterID && !isAdmin {
			return ErrPermissionDenied
		}

		if !CanCancel(b.StartTime, s.clock.Now()) {
			return ErrCancelTooLate
		}

		committed, err := s.commitCancel(ctx, b)
		if err != nil {
			return err
		}
		if committed {
			return nil
		}
	}
}

// commitCancel flips the booking to cancelled under its schedule lock,
// re-reading first so a concurrent cancel or reschedule is observed
// rather than overwritten.
func (s *service) commitCancel(ctx context.Context, b *Booking) (bool, error) {
	release := s.locks.acquire(scheduleKey(b.CourtID, b.StartTime))
	defer release()

	cur, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return false, err
	}
	if cur.Status == StatusCancelled {
		return false, ErrNotFound
	}
	if cur.CourtID != b.CourtID || !cur.StartTime.Equal(b.StartTime) {
		return false, nil
	}

	cancelled := *cur
	cancelled.Status = StatusCancelled
	if err := s.repo.Update(ctx, &cancelled); err != nil {
		return false, err
	}
	return true, nil
}
