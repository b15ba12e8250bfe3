package booking

import "time"

// CancellationLeadTime is the minimum time that must remain before a
// booking's start for a cancellation or reschedule to be accepted.
const CancellationLeadTime = 24 * time.Hour

// CanCancel reports whether a booking starting at start may still be
// cancelled (or have its date/time changed) at the instant now.
// The caller supplies now; this function never reads the system clock.
func CanCancel(start, now time.Time) bool {
	return !now.Add(CancellationLeadTime).After(start)
}
