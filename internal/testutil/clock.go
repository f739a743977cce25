// Package testutil provides shared helpers for tests.
package testutil

import "time"

// FixedClock returns a Now func pinned to the given instant.
//
// Export file names embed the clock's timestamp, so pinning the clock
// makes the names deterministic in tests.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// SteppingClock returns a Now func that starts at start and advances
// by step on every call.
//
// Guarantees distinct export file names when a test writes more than
// one snapshot within the same second.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
