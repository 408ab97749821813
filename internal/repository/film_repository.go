package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinetix/session-booking/internal/model"
)

// FilmRepo manages persistence for films.
type FilmRepo struct {
	db *sql.DB
}

// NewFilmRepo constructs a FilmRepo with the given DB handle.
func NewFilmRepo(db *sql.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

// Create inserts a new film and assigns the generated ID back to the
// struct.  Title, genre, duration and price must be set by the caller.
func (r *FilmRepo) Create(ctx context.Context, f *model.Film) error {
	const q = `INSERT INTO films (owner_id, title, genre, duration_min, price_cents) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.OwnerID, f.Title, f.Genre, f.DurationMin, f.PriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	// Fetch the freshly inserted row to populate DB-default timestamps.
	const sel = `SELECT id, owner_id, title, genre, duration_min, price_cents, created_at, updated_at FROM films WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, f.ID).Scan(
		&f.ID, &f.OwnerID, &f.Title, &f.Genre, &f.DurationMin, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
	)
}

// GetByID retrieves a film by its ID.  Returns ErrFilmNotFound when no
// row matches.
func (r *FilmRepo) GetByID(ctx context.Context, id uint64) (*model.Film, error) {
	const q = `SELECT id, owner_id, title, genre, duration_min, price_cents, created_at, updated_at FROM films WHERE id = ?`
	var f model.Film
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&f.ID, &f.OwnerID, &f.Title, &f.Genre, &f.DurationMin, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return &f, nil
}

// GetByIDAndOwner retrieves a film only when it belongs to the given
// owner.  Returns ErrFilmNotFound otherwise, so handlers do not leak the
// existence of other owners' films.
func (r *FilmRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Film, error) {
	const q = `SELECT id, owner_id, title, genre, duration_min, price_cents, created_at, updated_at
               FROM films WHERE id = ? AND owner_id = ?`
	var f model.Film
	err := r.db.QueryRowContext(ctx, q, id, ownerID).Scan(
		&f.ID, &f.OwnerID, &f.Title, &f.Genre, &f.DurationMin, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByOwner returns all films of an owner ordered by title.  When the
// owner has no films it returns an empty slice and nil error.
func (r *FilmRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Film, error) {
	const q = `SELECT id, owner_id, title, genre, duration_min, price_cents, created_at, updated_at
               FROM films WHERE owner_id = ? ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Film
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(
			&f.ID, &f.OwnerID, &f.Title, &f.Genre, &f.DurationMin, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
