// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published when a ticket purchase completes.  It
// carries enough for downstream consumers to log, notify or feed
// analytics without querying the primary database.
type TicketIssuedEvent struct {
	TicketCode string `json:"ticket_code"`
	SessionID  uint64 `json:"session_id"`
	UserID     uint64 `json:"user_id"`
	RoomID     uint64 `json:"room_id"`
	RoomName   string `json:"room_name"`
	FilmTitle  string `json:"film_title"`
	StartsAt   string `json:"starts_at"`
	EndsAt     string `json:"ends_at"`
	SeatLabel  string `json:"seat_label"`
	TicketType string `json:"ticket_type"`
	PriceCents uint32 `json:"price_cents"`
	IssuedAt   string `json:"issued_at"`
}
