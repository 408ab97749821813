package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketType classifies a ticket for pricing purposes.  Each type carries
// a discount applied to the session price when the ticket is issued.
type TicketType string

// Supported ticket types and their discounts.
const (
	TicketFull    TicketType = "FULL"    // no discount
	TicketHalf    TicketType = "HALF"    // 50% off
	TicketStudent TicketType = "STUDENT" // 50% off
	TicketBank    TicketType = "BANK"    // 30% off (bank partnership)
)

// discountBasisPoints maps each ticket type to its discount in basis
// points (1/100 of a percent), so the math stays in integers.
var discountBasisPoints = map[TicketType]uint32{
	TicketFull:    0,
	TicketHalf:    5000,
	TicketStudent: 5000,
	TicketBank:    3000,
}

// Valid reports whether t is one of the supported ticket types.
func (t TicketType) Valid() bool {
	_, ok := discountBasisPoints[t]
	return ok
}

// ApplyDiscount returns the price in cents after applying the type's
// discount, rounding down.
func (t TicketType) ApplyDiscount(priceCents uint32) uint32 {
	return priceCents - priceCents*discountBasisPoints[t]/10000
}

// Ticket records an admission sold for a session.  The price is fixed at
// purchase time by applying the ticket type's discount to the session
// price.  This struct corresponds to a row in the `tickets` table.
//
// Fields:
//  ID         – primary key identifier.
//  Code       – opaque reference printed on the ticket (UUID).
//  SessionID  – session this ticket admits to.
//  UserID     – buyer.
//  SeatLabel  – seat designation (e.g. "A12"); free-form.
//  Type       – ticket type used for pricing.
//  PriceCents – final price in cents after discount.
//  CreatedAt  – purchase timestamp.
type Ticket struct {
	ID         uint64     // tickets.id
	Code       string     // tickets.code
	SessionID  uint64     // tickets.session_id
	UserID     uint64     // tickets.user_id
	SeatLabel  string     // tickets.seat_label
	Type       TicketType // tickets.type
	PriceCents uint32     // tickets.price_cents
	CreatedAt  time.Time  // tickets.created_at
}

// NewTicket builds an unsaved ticket for the given session and buyer,
// pricing it from the session price and ticket type.
func NewTicket(session Session, userID uint64, seatLabel string, typ TicketType) Ticket {
	return Ticket{
		Code:       uuid.NewString(),
		SessionID:  session.ID,
		UserID:     userID,
		SeatLabel:  seatLabel,
		Type:       typ,
		PriceCents: typ.ApplyDiscount(session.PriceCents),
	}
}
