package model

import (
	"errors"
	"time"
)

// Session statuses as stored in the `sessions.status` column.
const (
	SessionScheduled = "SCHEDULED"
	SessionCancelled = "CANCELLED"
	SessionFinished  = "FINISHED"
)

// ErrInvalidSession is returned by NewSession when the inputs cannot form
// a well-formed session (zero start time or a film with no duration).
var ErrInvalidSession = errors.New("invalid session")

// Session represents one scheduled screening of a film in a room.  Start
// and end are full UTC date-times, not wall-clock times of day, so that
// interval comparisons stay monotonic across midnight.  EndsAt is derived
// at construction from the film duration and never recomputed afterwards.
//
// Fields:
//  ID         – primary key identifier.
//  RoomID     – room the session occupies.
//  FilmID     – film being screened.
//  StartsAt   – when the session begins (UTC).
//  EndsAt     – StartsAt plus the film duration (UTC).
//  PriceCents – session price: film price + room price, in cents.
//  Status     – current state (SCHEDULED, CANCELLED, FINISHED).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Session struct {
	ID         uint64    // sessions.id
	RoomID     uint64    // sessions.room_id
	FilmID     uint64    // sessions.film_id
	StartsAt   time.Time // sessions.starts_at
	EndsAt     time.Time // sessions.ends_at
	PriceCents uint32    // sessions.price_cents
	Status     string    // sessions.status
	CreatedAt  time.Time // sessions.created_at
	UpdatedAt  time.Time // sessions.updated_at
}

// NewSession builds an unsaved session for the given film in the given
// room.  The end time is the start plus the film duration and the price is
// the sum of the film and room prices.  It fails fast on malformed input
// so that invalid data never reaches the scheduler.
func NewSession(room Room, film Film, startsAt time.Time) (Session, error) {
	if startsAt.IsZero() || film.DurationMin == 0 {
		return Session{}, ErrInvalidSession
	}
	return Session{
		RoomID:     room.ID,
		FilmID:     film.ID,
		StartsAt:   startsAt.UTC(),
		EndsAt:     startsAt.UTC().Add(film.Duration()),
		PriceCents: film.PriceCents + room.PriceCents,
		Status:     SessionScheduled,
	}, nil
}
