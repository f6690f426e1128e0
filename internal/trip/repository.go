package trip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository handles trip data persistence
type Repository struct {
	db *sql.DB
}

// Compile-time check that Repository implements Store
var _ Store = (*Repository)(nil)

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trip into the database
func (r *Repository) Create(ctx context.Context, t *Trip) (*Trip, error) {
	query := `
		INSERT INTO trips (id, code, name, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code, name, start_date, end_date, created_at
	`

	created := &Trip{}
	err := r.db.QueryRowContext(ctx, query, t.ID, t.Code, t.Name, t.StartDate, t.EndDate).Scan(
		&created.ID,
		&created.Code,
		&created.Name,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return created, nil
}

// GetByCode retrieves a trip by its code
func (r *Repository) GetByCode(ctx context.Context, code string) (*Trip, error) {
	query := `
		SELECT id, code, name, start_date, end_date, created_at
		FROM trips
		WHERE code = $1
	`

	t := &Trip{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&t.ID,
		&t.Code,
		&t.Name,
		&t.StartDate,
		&t.EndDate,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return t, nil
}

// CodeExists reports whether a trip already uses the given code
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trips WHERE code = $1)`
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check trip code: %w", err)
	}
	return exists, nil
}

// Update modifies a trip's name and dates. A nil name is left unchanged; a
// date is only written when its set flag is true, so nil clears it.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, name *string, setStart bool, startDate *time.Time, setEnd bool, endDate *time.Time) (*Trip, error) {
	query := `
		UPDATE trips
		SET name = COALESCE($2, name),
		    start_date = CASE WHEN $3::boolean THEN $4::date ELSE start_date END,
		    end_date = CASE WHEN $5::boolean THEN $6::date ELSE end_date END
		WHERE id = $1
		RETURNING id, code, name, start_date, end_date, created_at
	`

	t := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id, name, setStart, startDate, setEnd, endDate).Scan(
		&t.ID,
		&t.Code,
		&t.Name,
		&t.StartDate,
		&t.EndDate,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return t, nil
}
