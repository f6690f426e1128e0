package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/tripsplit/internal/balance"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// Summary is the computed financial picture of a trip
type Summary struct {
	Trip             *trip.Trip
	Total            decimal.Decimal
	ParticipantCount int
	AveragePerPerson decimal.Decimal
	TotalDays        int // Sum of every participant's weight
	WeightMode       WeightMode
	Balances         []balance.ParticipantBalance
	Settlements      []balance.Settlement
}
