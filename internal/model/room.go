package model

import "time"

// Room identifies a physical screening location.  For scheduling it acts
// purely as a partition key: sessions are only compared for conflicts
// against other sessions in the same room.  This struct corresponds to a
// row in the `rooms` table.
//
// Fields:
//  ID         – primary key identifier.
//  OwnerID    – user ID of the room owner.
//  Name       – unique room name per owner (e.g. "Eldorado - IMAX").
//  PriceCents – room component of the session price, in cents.
//  IsActive   – whether the room accepts new sessions.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Room struct {
	ID         uint64    // rooms.id
	OwnerID    uint64    // rooms.owner_id
	Name       string    // rooms.name
	PriceCents uint32    // rooms.price_cents
	IsActive   bool      // rooms.is_active
	CreatedAt  time.Time // rooms.created_at
	UpdatedAt  time.Time // rooms.updated_at
}
