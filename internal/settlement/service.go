package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/internal/metrics"
	"github.com/fkhayef/tripsplit/internal/participant"
	"github.com/fkhayef/tripsplit/internal/payment"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// TripFinder loads a trip by its code
type TripFinder interface {
	GetByCode(ctx context.Context, code string) (*trip.Trip, error)
}

// ParticipantLister lists a trip's participants
type ParticipantLister interface {
	List(ctx context.Context, tripID uuid.UUID) ([]*participant.Participant, error)
}

// PaymentLister lists a trip's payments
type PaymentLister interface {
	List(ctx context.Context, tripID uuid.UUID) ([]*payment.Payment, error)
}

// Service builds trip summaries from the current participants and payments
type Service struct {
	trips        TripFinder
	participants ParticipantLister
	payments     PaymentLister
	factory      *Factory
	logger       *zap.Logger
}

// NewService creates a new settlement service
func NewService(trips TripFinder, participants ParticipantLister, payments PaymentLister, factory *Factory, logger *zap.Logger) *Service {
	return &Service{
		trips:        trips,
		participants: participants,
		payments:     payments,
		factory:      factory,
		logger:       logger,
	}
}

// Summary computes the balances and settlements of the trip with the given
// code, weighting participants according to mode.
func (s *Service) Summary(ctx context.Context, code, mode string) (*Summary, error) {
	strategy, err := s.factory.CreateFromString(mode)
	if err != nil {
		return nil, err
	}

	t, err := s.trips.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	participants, err := s.participants.List(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	payments, err := s.payments.List(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	summary := BuildSummary(t, participants, payments, strategy)

	metrics.SummariesComputed.WithLabelValues(string(summary.WeightMode)).Inc()
	metrics.TransfersPerSummary.Observe(float64(len(summary.Settlements)))

	s.logger.Debug("computed trip summary",
		zap.String("trip_code", t.Code),
		zap.String("weight_mode", string(summary.WeightMode)),
		zap.Int("participants", summary.ParticipantCount),
		zap.Int("payments", len(payments)),
		zap.Int("settlements", len(summary.Settlements)),
	)

	return summary, nil
}
