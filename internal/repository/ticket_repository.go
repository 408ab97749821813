package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cinetix/session-booking/internal/model"
)

// TicketRepo manages persistence for sold tickets.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

const ticketCols = `id, code, session_id, user_id, seat_label, type, price_cents, created_at`

// Create inserts a ticket and assigns the generated ID back to the
// struct.  A duplicate seat for the same session maps to ErrConflict via
// the (session_id, seat_label) unique index.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	const q = `INSERT INTO tickets (code, session_id, user_id, seat_label, type, price_cents) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Code, t.SessionID, t.UserID, t.SeatLabel, string(t.Type), t.PriceCents)
	if err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	const sel = `SELECT ` + ticketCols + ` FROM tickets WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, t.ID).Scan(
		&t.ID, &t.Code, &t.SessionID, &t.UserID, &t.SeatLabel, &t.Type, &t.PriceCents, &t.CreatedAt,
	)
}

// GetByCode retrieves a ticket by its public code.
func (r *TicketRepo) GetByCode(ctx context.Context, code string) (*model.Ticket, error) {
	const q = `SELECT ` + ticketCols + ` FROM tickets WHERE code = ?`
	var t model.Ticket
	err := r.db.QueryRowContext(ctx, q, code).Scan(
		&t.ID, &t.Code, &t.SessionID, &t.UserID, &t.SeatLabel, &t.Type, &t.PriceCents, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByUser returns all tickets bought by a user, newest first.
func (r *TicketRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Ticket, error) {
	const q = `SELECT ` + ticketCols + ` FROM tickets WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Ticket
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(
			&t.ID, &t.Code, &t.SessionID, &t.UserID, &t.SeatLabel, &t.Type, &t.PriceCents, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountBySession returns the number of tickets sold for a session.
func (r *TicketRepo) CountBySession(ctx context.Context, sessionID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}

func isDuplicate(err error) bool {
	// 1062 = MySQL duplicate entry.
	return err != nil && strings.Contains(err.Error(), "1062")
}
