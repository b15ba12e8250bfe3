package booking

import (
	"sort"
	"time"
)

// All courts share the same opening hours. Per-court hours would move
// these onto the court record; not needed today.
const (
	OpeningHour = 9
	ClosingHour = 22
)

// OpeningHours returns the bookable range of the given day.
func OpeningHours(date time.Time) Interval {
	y, m, d := date.UTC().Date()
	return Interval{
		Start: time.Date(y, m, d, OpeningHour, 0, 0, 0, time.UTC),
		End:   time.Date(y, m, d, ClosingHour, 0, 0, 0, time.UTC),
	}
}

// Availability is the free schedule of one court on one day.
type Availability struct {
	CourtID     int64
	Date        time.Time
	FreeWindows []Interval
}

// ComputeFreeWindows returns the ordered gaps between the given bookings
// within the opening hours. Cancelled bookings are skipped. The function
// trusts that active bookings do not overlap each other; that invariant
// is enforced at write time, not re-checked here.
func ComputeFreeWindows(open Interval, bookings []*Booking) []Interval {
	sorted := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		sorted = append(sorted, b)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var windows []Interval
	cursor := open.Start
	for _, b := range sorted {
		if cursor.Before(b.StartTime) {
			windows = append(windows, Interval{Start: cursor, End: b.StartTime})
		}
		if end := b.EndTime(); end.After(cursor) {
			cursor = end
		}
	}
	if cursor.Before(open.End) {
		windows = append(windows, Interval{Start: cursor, End: open.End})
	}
	return windows
}

// FitsAny reports whether the candidate lies fully inside one of the windows.
func FitsAny(candidate Interval, windows []Interval) bool {
	for _, w := range windows {
		if w.Contains(candidate) {
			return true
		}
	}
	return false
}
