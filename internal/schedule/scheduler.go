// Package schedule decides whether a candidate session can be admitted to
// a room without overlapping the sessions already booked there.  It is
// pure and synchronous: no I/O, no mutation, no room filtering.  Callers
// must supply sessions that all belong to the same room; this package
// takes that scoping on trust.
package schedule

import "github.com/cinetix/session-booking/internal/model"

// Scheduler answers admission queries against the sessions already booked
// for a single room.  The existing list is borrowed, never mutated, and
// does not need to be sorted.
//
// Fits is a read-only check.  Callers that check and then insert must
// serialize the pair themselves (a transaction or a mutex around both
// steps); two concurrent check-then-insert sequences on the same room can
// otherwise both pass the check and admit conflicting sessions.
type Scheduler struct {
	existing []model.Session
}

// NewScheduler builds a scheduler over the sessions currently booked for
// one room.  The caller is responsible for filtering the list to a single
// room before handing it over.
func NewScheduler(existing []model.Session) *Scheduler {
	return &Scheduler{existing: existing}
}

// Fits reports whether the candidate session can be admitted without
// overlapping any existing session.  Sessions occupy the half-open
// interval [StartsAt, EndsAt): a session ending exactly when another
// starts is not a conflict, in either direction.  An empty schedule
// always fits.
func (s *Scheduler) Fits(candidate model.Session) bool {
	want := intervalOf(candidate)
	for _, e := range s.existing {
		if want.Overlaps(intervalOf(e)) {
			return false
		}
	}
	return true
}

// FitsExcluding behaves like Fits but ignores the existing session with
// the given ID.  It is used when rescheduling, so a session does not
// conflict with its own current slot.
func (s *Scheduler) FitsExcluding(candidate model.Session, excludeID uint64) bool {
	want := intervalOf(candidate)
	for _, e := range s.existing {
		if e.ID == excludeID {
			continue
		}
		if want.Overlaps(intervalOf(e)) {
			return false
		}
	}
	return true
}

// Conflicts returns every existing session whose interval overlaps the
// candidate's, with the session carrying excludeID skipped.  Pass zero to
// skip nothing.  Unlike Fits it does not short-circuit, so callers can
// report all conflicting sessions at once.
func (s *Scheduler) Conflicts(candidate model.Session, excludeID uint64) []model.Session {
	want := intervalOf(candidate)
	var out []model.Session
	for _, e := range s.existing {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if want.Overlaps(intervalOf(e)) {
			out = append(out, e)
		}
	}
	return out
}

func intervalOf(s model.Session) Interval {
	return Interval{Start: s.StartsAt, End: s.EndsAt}
}
