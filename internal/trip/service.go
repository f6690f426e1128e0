package trip

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrNameRequired    = errors.New("trip name is required")
	ErrInvalidDate     = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrInvalidRange    = errors.New("end date cannot be before start date")
	ErrCodeUnavailable = errors.New("could not allocate a free trip code")
)

// maxCodeAttempts bounds how many random codes are tried before giving up
const maxCodeAttempts = 50

// Store is the persistence the trip service needs
type Store interface {
	Create(ctx context.Context, t *Trip) (*Trip, error)
	GetByCode(ctx context.Context, code string) (*Trip, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, id uuid.UUID, name *string, setStart bool, startDate *time.Time, setEnd bool, endDate *time.Time) (*Trip, error)
}

// Service handles trip business logic
type Service struct {
	repo    Store
	newCode func() string
}

// NewService creates a new trip service
func NewService(repo Store) *Service {
	return &Service{repo: repo, newCode: randomCode}
}

// Create creates a trip under a fresh 4-digit code
func (s *Service) Create(ctx context.Context, req *CreateTripRequest) (*Trip, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, ErrInvalidRange
	}

	code, err := s.allocateCode(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Trip{
		ID:        uuid.New(),
		Code:      code,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

// GetByCode retrieves a trip by its code
func (s *Service) GetByCode(ctx context.Context, code string) (*Trip, error) {
	t, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}
	return t, nil
}

// ResolveTripID maps a trip code to its ID for request routing
func (s *Service) ResolveTripID(ctx context.Context, code string) (uuid.UUID, bool, error) {
	t, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return uuid.Nil, false, err
	}
	if t == nil {
		return uuid.Nil, false, nil
	}
	return t.ID, true, nil
}

// Update changes a trip's name or dates. A date sent as an empty string is
// cleared; an omitted date is left as it is.
func (s *Service) Update(ctx context.Context, code string, req *UpdateTripRequest) (*Trip, error) {
	existing, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, ErrNameRequired
		}
		name = &trimmed
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	// Validate the range the trip will end up with
	setStart, setEnd := req.StartDate != nil, req.EndDate != nil
	finalStart, finalEnd := existing.StartDate, existing.EndDate
	if setStart {
		finalStart = startDate
	}
	if setEnd {
		finalEnd = endDate
	}
	if finalStart != nil && finalEnd != nil && finalEnd.Before(*finalStart) {
		return nil, ErrInvalidRange
	}

	updated, err := s.repo.Update(ctx, existing.ID, name, setStart, startDate, setEnd, endDate)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTripNotFound
	}
	return updated, nil
}

// allocateCode draws random codes until one is unused
func (s *Service) allocateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.newCode()
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeUnavailable
}

// randomCode returns a code between 1000 and 9999
func randomCode() string {
	return fmt.Sprintf("%d", 1000+rand.IntN(9000))
}

// parseDate accepts YYYY-MM-DD or RFC 3339; empty means no date
func parseDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, ErrInvalidDate
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}
