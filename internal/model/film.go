package model

import "time"

// Film represents a movie in an owner's catalogue.  Only its duration
// matters for scheduling; the price contributes to the session price.
// This struct corresponds to a row in the `films` table.
//
// Fields:
//  ID          – primary key identifier.
//  OwnerID     – user ID of the catalogue owner.
//  Title       – film title, unique per owner.
//  Genre       – free-form genre label (e.g. SCI-FI).
//  DurationMin – running time in whole minutes.
//  PriceCents  – film component of the session price, in cents.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Film struct {
	ID          uint64    // films.id
	OwnerID     uint64    // films.owner_id
	Title       string    // films.title
	Genre       string    // films.genre
	DurationMin uint32    // films.duration_min
	PriceCents  uint32    // films.price_cents
	CreatedAt   time.Time // films.created_at
	UpdatedAt   time.Time // films.updated_at
}

// Duration returns the film's running time as a time.Duration.
func (f Film) Duration() time.Duration {
	return time.Duration(f.DurationMin) * time.Minute
}
