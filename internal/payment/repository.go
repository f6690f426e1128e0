package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// Compile-time check that Repository implements Store
var _ Store = (*Repository)(nil)

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment into the database
func (r *Repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		WITH inserted AS (
			INSERT INTO payments (id, trip_id, paid_by_id, amount, description, note, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, trip_id, paid_by_id, amount, description, note, paid_at, created_at
		)
		SELECT i.id, i.trip_id, i.paid_by_id, i.amount, i.description, i.note, i.paid_at, i.created_at,
		       COALESCE(pt.nickname, pt.name) AS paid_by_name
		FROM inserted i
		JOIN participants pt ON pt.id = i.paid_by_id
	`

	created := &Payment{}
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.TripID, p.PaidByID, p.Amount, p.Description, p.Note, p.PaidAt,
	).Scan(
		&created.ID,
		&created.TripID,
		&created.PaidByID,
		&created.Amount,
		&created.Description,
		&created.Note,
		&created.PaidAt,
		&created.CreatedAt,
		&created.PaidByName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

// ListByTripID retrieves a trip's payments, most recent first
func (r *Repository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]*Payment, error) {
	query := `
		SELECT p.id, p.trip_id, p.paid_by_id, p.amount, p.description, p.note, p.paid_at, p.created_at,
		       COALESCE(pt.nickname, pt.name) AS paid_by_name
		FROM payments p
		JOIN participants pt ON pt.id = p.paid_by_id
		WHERE p.trip_id = $1
		ORDER BY p.paid_at DESC, p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*Payment{}
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(
			&p.ID,
			&p.TripID,
			&p.PaidByID,
			&p.Amount,
			&p.Description,
			&p.Note,
			&p.PaidAt,
			&p.CreatedAt,
			&p.PaidByName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}

// Delete removes a payment from a trip
func (r *Repository) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE id = $1 AND trip_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// CountByPayer counts the payments a participant made on a trip
func (r *Repository) CountByPayer(ctx context.Context, tripID, participantID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM payments WHERE trip_id = $1 AND paid_by_id = $2`
	if err := r.db.QueryRowContext(ctx, query, tripID, participantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}
