package settlement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fkhayef/tripsplit/internal/participant"
)

// WeightMode defines how participants' shares of the total are weighted
type WeightMode string

const (
	WeightModeDays WeightMode = "DAYS"
	WeightModeEven WeightMode = "EVEN"
)

// ErrUnknownWeightMode is returned for modes other than DAYS and EVEN
var ErrUnknownWeightMode = errors.New("unknown weight mode")

// WeightStrategy is the interface that all weighting strategies implement
type WeightStrategy interface {
	// Weight returns the participant's number of shares for a trip lasting tripDays
	Weight(p *participant.Participant, tripDays int) int

	// Mode returns the mode identifier for this strategy
	Mode() WeightMode
}

// =============================================================================
// DAYS STRATEGY
// Weights each participant by the days they attend, falling back to the
// trip's duration
// =============================================================================

// DaysStrategy weights participants by days attended
type DaysStrategy struct{}

// Mode returns the weight mode identifier
func (s *DaysStrategy) Mode() WeightMode {
	return WeightModeDays
}

// Weight returns max(1, days_in_trip), or the trip duration when unset
func (s *DaysStrategy) Weight(p *participant.Participant, tripDays int) int {
	if p.DaysInTrip != nil {
		return max(1, *p.DaysInTrip)
	}
	return max(1, tripDays)
}

// =============================================================================
// EVEN STRATEGY
// Every participant carries one share
// =============================================================================

// EvenStrategy splits the total equally
type EvenStrategy struct{}

// Mode returns the weight mode identifier
func (s *EvenStrategy) Mode() WeightMode {
	return WeightModeEven
}

// Weight always returns 1
func (s *EvenStrategy) Weight(_ *participant.Participant, _ int) int {
	return 1
}

// Factory creates weighting strategies based on the requested mode
type Factory struct {
	defaultMode WeightMode
}

// NewFactory creates a factory that uses defaultMode when no mode is requested.
// An unrecognised default falls back to DAYS.
func NewFactory(defaultMode string) *Factory {
	mode := WeightMode(strings.ToUpper(strings.TrimSpace(defaultMode)))
	if mode != WeightModeEven {
		mode = WeightModeDays
	}
	return &Factory{defaultMode: mode}
}

// Create returns the strategy for the given mode
func (f *Factory) Create(mode WeightMode) (WeightStrategy, error) {
	switch mode {
	case WeightModeDays:
		return &DaysStrategy{}, nil
	case WeightModeEven:
		return &EvenStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownWeightMode, mode)
	}
}

// CreateFromString creates a strategy from a query or flag value. Matching is
// case-insensitive and an empty value selects the default mode.
func (f *Factory) CreateFromString(mode string) (WeightStrategy, error) {
	mode = strings.ToUpper(strings.TrimSpace(mode))
	if mode == "" {
		return f.Create(f.defaultMode)
	}
	return f.Create(WeightMode(mode))
}
