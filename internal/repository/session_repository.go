package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinetix/session-booking/internal/model"
)

// SessionRepo manages persistence for scheduled sessions.  It knows
// nothing about conflict rules: deciding whether a candidate fits a room
// belongs to the schedule package, which operates on the lists returned
// here.  Each list is scoped to a single room so the scheduler's
// one-room contract holds by construction.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning the fit check and the insert as one atomic unit.
func (r *SessionRepo) DB() *sql.DB {
	return r.db
}

const sessionCols = `id, room_id, film_id, starts_at, ends_at, price_cents, status, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }, s *model.Session) error {
	return row.Scan(
		&s.ID, &s.RoomID, &s.FilmID, &s.StartsAt, &s.EndsAt, &s.PriceCents, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}

// GetByID retrieves a session by its ID.  Returns ErrSessionNotFound
// when no row matches.
func (r *SessionRepo) GetByID(ctx context.Context, id uint64) (*model.Session, error) {
	const q = `SELECT ` + sessionCols + ` FROM sessions WHERE id = ?`
	var s model.Session
	if err := scanSession(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByRoom returns all sessions of a room ordered by start time.  Used
// by the public browse endpoints.
func (r *SessionRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Session, error) {
	const q = `SELECT ` + sessionCols + ` FROM sessions WHERE room_id = ? ORDER BY starts_at ASC`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

// ListScheduledByRoomTx returns the SCHEDULED sessions of a room inside
// the given transaction, locking the rows (FOR UPDATE) so that two
// concurrent check-then-insert sequences on the same room serialize
// against each other.  Cancelled and finished sessions do not occupy the
// room and are excluded.
func (r *SessionRepo) ListScheduledByRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) ([]model.Session, error) {
	const q = `SELECT ` + sessionCols + ` FROM sessions
               WHERE room_id = ? AND status = 'SCHEDULED'
               ORDER BY starts_at ASC
               FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

// CreateTx inserts a new session using the provided transaction.  The
// caller must commit or roll back.  On success the generated ID and the
// DB-default fields are populated on the given session.
func (r *SessionRepo) CreateTx(ctx context.Context, tx *sql.Tx, s *model.Session) error {
	const q = `INSERT INTO sessions (room_id, film_id, starts_at, ends_at, price_cents) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, s.RoomID, s.FilmID, s.StartsAt, s.EndsAt, s.PriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	const sel = `SELECT ` + sessionCols + ` FROM sessions WHERE id = ?`
	return scanSession(tx.QueryRowContext(ctx, sel, s.ID), s)
}

// UpdateScheduleTx rewrites a session's film, times, price and status
// inside the given transaction.  The caller has already re-run the fit
// check against the room under the same transaction.
func (r *SessionRepo) UpdateScheduleTx(ctx context.Context, tx *sql.Tx, s *model.Session) error {
	const q = `UPDATE sessions
               SET film_id = ?, starts_at = ?, ends_at = ?, price_cents = ?, status = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, s.FilmID, s.StartsAt, s.EndsAt, s.PriceCents, s.Status, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoChange
	}
	const sel = `SELECT ` + sessionCols + ` FROM sessions WHERE id = ?`
	return scanSession(tx.QueryRowContext(ctx, sel, s.ID), s)
}

// DeleteByIDAndOwner removes a session provided it occupies a room owned
// by the given owner.  The deletion runs in a transaction; if any ticket
// has been sold for the session, it aborts with ErrConflict.
func (r *SessionRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var dbOwnerID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT r.owner_id FROM sessions s JOIN rooms r ON r.id = s.room_id WHERE s.id = ?`, id,
	).Scan(&dbOwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}
	if dbOwnerID != ownerID {
		err = ErrForbidden
		return err
	}
	var ticketCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE session_id = ?`, id).Scan(&ticketCount); err != nil {
		return err
	}
	if ticketCount > 0 {
		err = ErrConflict
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}

func collectSessions(rows *sql.Rows) ([]model.Session, error) {
	var result []model.Session
	for rows.Next() {
		var s model.Session
		if err := scanSession(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
