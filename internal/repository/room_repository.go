package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cinetix/session-booking/internal/model"
)

// RoomRepo manages persistence for rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a new room and assigns the generated ID back to the
// struct.  Room names are unique per owner; a duplicate maps to
// ErrConflict.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (owner_id, name, price_cents) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, room.OwnerID, room.Name, room.PriceCents)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	const sel = `SELECT id, owner_id, name, price_cents, is_active, created_at, updated_at FROM rooms WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, room.ID).Scan(
		&room.ID, &room.OwnerID, &room.Name, &room.PriceCents, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
	)
}

// GetByID retrieves a room by its ID.  Returns ErrRoomNotFound when no
// row matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, owner_id, name, price_cents, is_active, created_at, updated_at FROM rooms WHERE id = ?`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&room.ID, &room.OwnerID, &room.Name, &room.PriceCents, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetByIDAndOwner retrieves a room only when it belongs to the given
// owner, returning ErrRoomNotFound otherwise.
func (r *RoomRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Room, error) {
	const q = `SELECT id, owner_id, name, price_cents, is_active, created_at, updated_at
               FROM rooms WHERE id = ? AND owner_id = ?`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, id, ownerID).Scan(
		&room.ID, &room.OwnerID, &room.Name, &room.PriceCents, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// ListActive returns every active room ordered by name.  Used by the
// public browse endpoints.
func (r *RoomRepo) ListActive(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT id, owner_id, name, price_cents, is_active, created_at, updated_at
               FROM rooms WHERE is_active = 1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(
			&room.ID, &room.OwnerID, &room.Name, &room.PriceCents, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByOwner returns all rooms of an owner ordered by name.
func (r *RoomRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Room, error) {
	const q = `SELECT id, owner_id, name, price_cents, is_active, created_at, updated_at
               FROM rooms WHERE owner_id = ? ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(
			&room.ID, &room.OwnerID, &room.Name, &room.PriceCents, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
