package participant

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrNameRequired           = errors.New("participant name is required")
	ErrParticipantHasPayments = errors.New("cannot delete a participant who has payments; delete the payments first")
)

// Store is the persistence the participant service needs
type Store interface {
	Create(ctx context.Context, p *Participant) (*Participant, error)
	GetByID(ctx context.Context, tripID, id uuid.UUID) (*Participant, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]*Participant, error)
	Update(ctx context.Context, tripID, id uuid.UUID, setNickname bool, nickname *string, setDays bool, days *int) (*Participant, error)
	Delete(ctx context.Context, tripID, id uuid.UUID) error
}

// PaymentCounter counts the payments recorded against a participant
type PaymentCounter interface {
	CountByPayer(ctx context.Context, tripID, participantID uuid.UUID) (int, error)
}

// Service handles participant business logic
type Service struct {
	repo     Store
	payments PaymentCounter
}

// NewService creates a new participant service with its dependencies injected
func NewService(repo Store, payments PaymentCounter) *Service {
	return &Service{repo: repo, payments: payments}
}

// Create adds a participant to a trip
func (s *Service) Create(ctx context.Context, tripID uuid.UUID, req *CreateParticipantRequest) (*Participant, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.Create(ctx, &Participant{
		ID:         uuid.New(),
		TripID:     tripID,
		Name:       name,
		Nickname:   trimmedOrNil(req.Nickname),
		IsAdmin:    req.IsAdmin,
		DaysInTrip: validDaysOrNil(req.DaysInTrip),
	})
}

// List retrieves a trip's participants in the order they joined
func (s *Service) List(ctx context.Context, tripID uuid.UUID) ([]*Participant, error) {
	return s.repo.ListByTripID(ctx, tripID)
}

// Update changes a participant's nickname or days in trip
func (s *Service) Update(ctx context.Context, tripID, id uuid.UUID, req *UpdateParticipantRequest) (*Participant, error) {
	p, err := s.repo.Update(ctx, tripID, id, req.Nickname != nil, trimmedOrNil(req.Nickname), req.DaysInTrip != nil, validDaysOrNil(req.DaysInTrip))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	return p, nil
}

// Delete removes a participant who has not paid for anything
func (s *Service) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, tripID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrParticipantNotFound
	}

	count, err := s.payments.CountByPayer(ctx, tripID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrParticipantHasPayments
	}

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

// validDaysOrNil drops day counts below one
func validDaysOrNil(days *int) *int {
	if days == nil || *days < 1 {
		return nil
	}
	d := *days
	return &d
}
