package schedule

import "time"

// Interval is a half-open time span [Start, End).  Sessions occupy their
// start instant but release the room at the end instant, so an interval
// ending exactly when another starts does not collide with it.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether i and other intersect.  Touching endpoints are
// not an intersection: back-to-back intervals in either order are clear.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether t falls inside the interval.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// IsZero reports whether the interval carries no time span at all.
func (i Interval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}
