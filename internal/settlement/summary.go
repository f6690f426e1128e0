package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/tripsplit/internal/balance"
	"github.com/fkhayef/tripsplit/internal/participant"
	"github.com/fkhayef/tripsplit/internal/payment"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// BuildSummary computes balances and settlements for a trip from its
// participants and payments. It has no side effects.
//
// The total is the sum of every payment; balances follow the participants'
// order.
func BuildSummary(t *trip.Trip, participants []*participant.Participant, payments []*payment.Payment, strategy WeightStrategy) *Summary {
	paid := make(map[string]decimal.Decimal, len(participants))
	amounts := make([]decimal.Decimal, 0, len(payments))
	for _, p := range payments {
		amounts = append(amounts, p.Amount)
		id := p.PaidByID.String()
		paid[id] = paid[id].Add(p.Amount)
	}
	total := balance.RoundMoney(balance.SumMoney(amounts...))

	tripDays := 1
	if t != nil {
		tripDays = t.DurationDays()
	}

	inputs := make([]balance.Input, len(participants))
	totalDays := 0
	for i, p := range participants {
		weight := strategy.Weight(p, tripDays)
		totalDays += weight
		id := p.ID.String()
		inputs[i] = balance.Input{
			ParticipantID: id,
			Name:          p.Name,
			Nickname:      p.NicknameOrEmpty(),
			Paid:          paid[id],
			Weight:        weight,
		}
	}

	balances := balance.ComputeBalances(total, inputs)

	average := decimal.Zero
	if len(participants) > 0 {
		average = total.DivRound(decimal.NewFromInt(int64(len(participants))), 2)
	}

	return &Summary{
		Trip:             t,
		Total:            total,
		ParticipantCount: len(participants),
		AveragePerPerson: average,
		TotalDays:        totalDays,
		WeightMode:       strategy.Mode(),
		Balances:         balances,
		Settlements:      balance.ComputeSettlements(balances),
	}
}
