package participant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles participant data persistence
type Repository struct {
	db *sql.DB
}

// Compile-time check that Repository implements Store
var _ Store = (*Repository)(nil)

// NewRepository creates a new participant repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const participantColumns = `id, trip_id, name, nickname, is_admin, days_in_trip, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (*Participant, error) {
	p := &Participant{}
	err := row.Scan(
		&p.ID,
		&p.TripID,
		&p.Name,
		&p.Nickname,
		&p.IsAdmin,
		&p.DaysInTrip,
		&p.CreatedAt,
	)
	return p, err
}

// Create inserts a new participant into the database
func (r *Repository) Create(ctx context.Context, p *Participant) (*Participant, error) {
	query := `
		INSERT INTO participants (id, trip_id, name, nickname, is_admin, days_in_trip)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + participantColumns

	created, err := scanParticipant(r.db.QueryRowContext(ctx, query,
		p.ID, p.TripID, p.Name, p.Nickname, p.IsAdmin, p.DaysInTrip))
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return created, nil
}

// GetByID retrieves a participant of a trip by ID
func (r *Repository) GetByID(ctx context.Context, tripID, id uuid.UUID) (*Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1 AND trip_id = $2`

	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, id, tripID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// ListByTripID retrieves a trip's participants, oldest first
func (r *Repository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]*Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE trip_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := []*Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return participants, nil
}

// Update writes the nickname when setNickname is true and the days in trip
// when setDays is true. A nil value stores NULL.
func (r *Repository) Update(ctx context.Context, tripID, id uuid.UUID, setNickname bool, nickname *string, setDays bool, days *int) (*Participant, error) {
	query := `
		UPDATE participants
		SET nickname = CASE WHEN $3::boolean THEN $4::text ELSE nickname END,
		    days_in_trip = CASE WHEN $5::boolean THEN $6::integer ELSE days_in_trip END
		WHERE id = $1 AND trip_id = $2
		RETURNING ` + participantColumns

	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, id, tripID, setNickname, nickname, setDays, days))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return p, nil
}

// Delete removes a participant from a trip
func (r *Repository) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1 AND trip_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// BelongsToTrip reports whether the participant is part of the trip
func (r *Repository) BelongsToTrip(ctx context.Context, tripID, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM participants WHERE id = $1 AND trip_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, id, tripID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}
	return exists, nil
}
