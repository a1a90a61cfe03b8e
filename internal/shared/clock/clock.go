package clock

import "time"

// Clock abstracts "now" so the leave engine's calendar arithmetic is
// testable against fixed dates. Today truncates to midnight UTC.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type systemClock struct{}

func System() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }

func (systemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type fixedClock struct{ at time.Time }

// Fixed returns a Clock pinned to the given instant.
func Fixed(at time.Time) Clock { return fixedClock{at: at.UTC()} }

func (f fixedClock) Now() time.Time { return f.at }

func (f fixedClock) Today() time.Time {
	return time.Date(f.at.Year(), f.at.Month(), f.at.Day(), 0, 0, 0, 0, time.UTC)
}
