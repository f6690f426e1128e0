package settlement

import (
	"github.com/fkhayef/tripsplit/internal/balance"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// BalanceResponse represents one participant's balance
type BalanceResponse struct {
	ParticipantID string  `json:"participant_id"`
	Name          string  `json:"name"`
	Nickname      string  `json:"nickname,omitempty"`
	Paid          float64 `json:"paid"`
	Expected      float64 `json:"expected"`
	Diff          float64 `json:"diff"` // Positive = is owed money, negative = owes
}

// SettlementResponse represents a single transfer that settles debts
type SettlementResponse struct {
	FromID   string  `json:"from_id"`
	FromName string  `json:"from_name"`
	ToID     string  `json:"to_id"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

// SummaryResponse represents the response for a trip summary
type SummaryResponse struct {
	Trip             *trip.TripResponse    `json:"trip,omitempty"`
	Total            float64               `json:"total"`
	ParticipantCount int                   `json:"participant_count"`
	AveragePerPerson float64               `json:"average_per_person"`
	TotalDays        int                   `json:"total_days"`
	WeightMode       WeightMode            `json:"weight_mode"`
	Balances         []*BalanceResponse    `json:"balances"`
	Settlements      []*SettlementResponse `json:"settlements"`
}

// ToResponse converts a Summary to a SummaryResponse DTO
func (s *Summary) ToResponse() *SummaryResponse {
	resp := &SummaryResponse{
		Total:            balance.MoneyToFloat(s.Total),
		ParticipantCount: s.ParticipantCount,
		AveragePerPerson: balance.MoneyToFloat(s.AveragePerPerson),
		TotalDays:        s.TotalDays,
		WeightMode:       s.WeightMode,
		Balances:         make([]*BalanceResponse, len(s.Balances)),
		Settlements:      make([]*SettlementResponse, len(s.Settlements)),
	}
	if s.Trip != nil {
		resp.Trip = s.Trip.ToResponse()
	}

	for i, b := range s.Balances {
		resp.Balances[i] = &BalanceResponse{
			ParticipantID: b.ParticipantID,
			Name:          b.Name,
			Nickname:      b.Nickname,
			Paid:          balance.MoneyToFloat(b.Paid),
			Expected:      balance.MoneyToFloat(b.Expected),
			Diff:          balance.MoneyToFloat(b.Diff),
		}
	}

	for i, st := range s.Settlements {
		resp.Settlements[i] = &SettlementResponse{
			FromID:   st.FromID,
			FromName: st.FromName,
			ToID:     st.ToID,
			ToName:   st.ToName,
			Amount:   balance.MoneyToFloat(st.Amount),
		}
	}

	return resp
}
