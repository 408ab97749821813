package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDerivesEndAndPrice(t *testing.T) {
	room := Room{ID: 3, Name: "Room 3", PriceCents: 1500}
	film := Film{ID: 9, Title: "Rogue One", DurationMin: 120, PriceCents: 2500}
	start := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	s, err := NewSession(room, film, start)
	require.NoError(t, err)

	assert.Equal(t, start.Add(2*time.Hour), s.EndsAt)
	assert.Equal(t, uint32(4000), s.PriceCents, "session price is film price plus room price")
	assert.Equal(t, SessionScheduled, s.Status)
}

func TestNewSessionRejectsMalformedInput(t *testing.T) {
	room := Room{ID: 3}
	film := Film{ID: 9, DurationMin: 120}

	_, err := NewSession(room, film, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = NewSession(room, Film{ID: 9, DurationMin: 0}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestTicketTypeApplyDiscount(t *testing.T) {
	tests := []struct {
		typ   TicketType
		price uint32
		want  uint32
	}{
		{TicketFull, 4000, 4000},
		{TicketHalf, 4000, 2000},
		{TicketStudent, 4000, 2000},
		{TicketBank, 4000, 2800},
		{TicketHalf, 4001, 2001}, // odd cent rounds down on the discount
		{TicketBank, 0, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.typ.ApplyDiscount(tc.price))
		})
	}
}

func TestTicketTypeValid(t *testing.T) {
	assert.True(t, TicketFull.Valid())
	assert.True(t, TicketBank.Valid())
	assert.False(t, TicketType("VIP").Valid())
	assert.False(t, TicketType("").Valid())
}

func TestNewTicketPricesFromSession(t *testing.T) {
	session := Session{ID: 11, PriceCents: 4000}

	tk := NewTicket(session, 42, "A12", TicketHalf)

	assert.Equal(t, uint64(11), tk.SessionID)
	assert.Equal(t, uint64(42), tk.UserID)
	assert.Equal(t, "A12", tk.SeatLabel)
	assert.Equal(t, uint32(2000), tk.PriceCents)
	assert.NotEmpty(t, tk.Code)

	other := NewTicket(session, 42, "A13", TicketHalf)
	assert.NotEqual(t, tk.Code, other.Code, "ticket codes are unique")
}
