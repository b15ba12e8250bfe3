package booking

import "time"

// Interval is a half-open time range [Start, End).
// The start instant belongs to the interval, the end instant does not,
// so two intervals that merely touch at a boundary do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval starting at start and lasting d.
func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Overlaps reports whether the two intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Contains reports whether other lies fully inside iv.
func (iv Interval) Contains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsValid reports whether the interval is non-empty.
func (iv Interval) IsValid() bool {
	return iv.End.After(iv.Start)
}
