package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fkhayef/tripsplit/internal/balance"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero and less than 100000000")
	ErrInvalidPayer    = errors.New("paid_by_id must be a valid participant ID")
	ErrPayerNotInTrip  = errors.New("payer is not a participant of this trip")
	ErrInvalidPaidAt   = errors.New("paid_at must be an RFC 3339 timestamp")
)

// maxAmount is the first value that no longer fits NUMERIC(10,2)
var maxAmount = decimal.New(1, 8)

// Store is the persistence the payment service needs
type Store interface {
	Create(ctx context.Context, p *Payment) (*Payment, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]*Payment, error)
	Delete(ctx context.Context, tripID, id uuid.UUID) error
}

// ParticipantChecker verifies that a participant belongs to a trip
type ParticipantChecker interface {
	BelongsToTrip(ctx context.Context, tripID, participantID uuid.UUID) (bool, error)
}

// Service handles payment business logic
type Service struct {
	repo         Store
	participants ParticipantChecker
	now          func() time.Time
}

// NewService creates a new payment service with its dependencies injected
func NewService(repo Store, participants ParticipantChecker) *Service {
	return &Service{repo: repo, participants: participants, now: time.Now}
}

// Create records a payment made by one of the trip's participants
func (s *Service) Create(ctx context.Context, tripID uuid.UUID, req *CreatePaymentRequest) (*Payment, error) {
	amount := balance.MoneyFromFloat(req.Amount)
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return nil, ErrInvalidAmount
	}

	payerID, err := uuid.Parse(strings.TrimSpace(req.PaidByID))
	if err != nil {
		return nil, ErrInvalidPayer
	}

	ok, err := s.participants.BelongsToTrip(ctx, tripID, payerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPayerNotInTrip
	}

	paidAt := s.now().UTC()
	if req.PaidAt != nil && strings.TrimSpace(*req.PaidAt) != "" {
		paidAt, err = time.Parse(time.RFC3339, strings.TrimSpace(*req.PaidAt))
		if err != nil {
			return nil, ErrInvalidPaidAt
		}
	}

	return s.repo.Create(ctx, &Payment{
		ID:          uuid.New(),
		TripID:      tripID,
		PaidByID:    payerID,
		Amount:      amount,
		Description: trimmedOrNil(req.Description),
		Note:        trimmedOrNil(req.Note),
		PaidAt:      paidAt,
	})
}

// List retrieves a trip's payments, most recent first
func (s *Service) List(ctx context.Context, tripID uuid.UUID) ([]*Payment, error) {
	return s.repo.ListByTripID(ctx, tripID)
}

// Delete removes a payment from a trip
func (s *Service) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tripID, id)
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
