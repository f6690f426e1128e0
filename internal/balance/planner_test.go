package balance

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceOf(id, diff string) ParticipantBalance {
	return ParticipantBalance{ParticipantID: id, Name: id, Diff: dec(diff)}
}

type transfer struct {
	from, to, amount string
}

func transfers(settlements []Settlement) []transfer {
	out := make([]transfer, len(settlements))
	for i, s := range settlements {
		out[i] = transfer{from: s.FromID, to: s.ToID, amount: s.Amount.StringFixed(2)}
	}
	return out
}

// applySettlements moves each settlement's amount back through the diffs
func applySettlements(balances []ParticipantBalance, settlements []Settlement) map[string]decimal.Decimal {
	diffs := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		diffs[b.ParticipantID] = b.Diff
	}
	for _, s := range settlements {
		diffs[s.FromID] = diffs[s.FromID].Add(s.Amount)
		diffs[s.ToID] = diffs[s.ToID].Sub(s.Amount)
	}
	return diffs
}

func TestComputeSettlements_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		inputs   []Input
		expected []transfer
	}{
		{
			name:  "one payer covers everyone",
			total: "300",
			inputs: []Input{
				{ParticipantID: "A", Paid: dec("300"), Weight: 1},
				{ParticipantID: "B", Paid: dec("0"), Weight: 1},
				{ParticipantID: "C", Paid: dec("0"), Weight: 1},
			},
			expected: []transfer{{"B", "A", "100.00"}, {"C", "A", "100.00"}},
		},
		{
			name:  "weighted payments already balanced",
			total: "150",
			inputs: []Input{
				{ParticipantID: "A", Paid: dec("100"), Weight: 2},
				{ParticipantID: "B", Paid: dec("50"), Weight: 1},
			},
			expected: []transfer{},
		},
		{
			name:  "equal payments",
			total: "90",
			inputs: []Input{
				{ParticipantID: "A", Paid: dec("30"), Weight: 1},
				{ParticipantID: "B", Paid: dec("30"), Weight: 1},
				{ParticipantID: "C", Paid: dec("30"), Weight: 1},
			},
			expected: []transfer{},
		},
		{
			name:  "uneven cent split",
			total: "100.00",
			inputs: []Input{
				{ParticipantID: "A", Paid: dec("100"), Weight: 1},
				{ParticipantID: "B", Paid: dec("0"), Weight: 1},
				{ParticipantID: "C", Paid: dec("0"), Weight: 1},
			},
			expected: []transfer{{"B", "A", "33.33"}, {"C", "A", "33.34"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := ComputeBalances(dec(tt.total), tt.inputs)
			settlements := ComputeSettlements(balances)
			assert.Equal(t, tt.expected, transfers(settlements))
		})
	}
}

func TestComputeSettlements_UnevenSplitMovesPayerSurplus(t *testing.T) {
	balances := ComputeBalances(dec("100"), []Input{
		{ParticipantID: "A", Paid: dec("100"), Weight: 1},
		{ParticipantID: "B", Weight: 1},
		{ParticipantID: "C", Weight: 1},
	})
	settlements := ComputeSettlements(balances)

	moved := decimal.Zero
	for _, s := range settlements {
		moved = moved.Add(s.Amount)
	}
	assert.Equal(t, "66.67", moved.StringFixed(2))

	// what A receives plus A's own share accounts for the full spend
	assert.Equal(t, "100.00", moved.Add(balances[0].Expected).StringFixed(2))
}

func TestComputeSettlements_KeepsArrayOrder(t *testing.T) {
	// A sorted solver would pair D with Y first; the greedy match walks in order
	balances := []ParticipantBalance{
		balanceOf("X", "10"),
		balanceOf("D1", "-5"),
		balanceOf("Y", "40"),
		balanceOf("D2", "-45"),
	}

	settlements := ComputeSettlements(balances)

	assert.Equal(t, []transfer{
		{"D1", "X", "5.00"},
		{"D2", "X", "5.00"},
		{"D2", "Y", "40.00"},
	}, transfers(settlements))
}

func TestComputeSettlements_BothCursorsAdvanceTogether(t *testing.T) {
	balances := []ParticipantBalance{
		balanceOf("a", "-20"),
		balanceOf("b", "20"),
		balanceOf("c", "-15"),
		balanceOf("d", "15"),
	}

	assert.Equal(t, []transfer{
		{"a", "b", "20.00"},
		{"c", "d", "15.00"},
	}, transfers(ComputeSettlements(balances)))
}

func TestComputeSettlements_ToleranceBand(t *testing.T) {
	balances := []ParticipantBalance{
		balanceOf("a", "0.01"),
		balanceOf("b", "-0.01"),
		balanceOf("c", "0.005"),
	}
	assert.Empty(t, ComputeSettlements(balances))
}

func TestComputeSettlements_OneSidedBalances(t *testing.T) {
	t.Run("only debtors", func(t *testing.T) {
		settlements := ComputeSettlements([]ParticipantBalance{balanceOf("a", "-10"), balanceOf("b", "-3")})
		assert.NotNil(t, settlements)
		assert.Empty(t, settlements)
	})

	t.Run("only creditors", func(t *testing.T) {
		assert.Empty(t, ComputeSettlements([]ParticipantBalance{balanceOf("a", "10")}))
	})

	t.Run("no balances", func(t *testing.T) {
		assert.Empty(t, ComputeSettlements(nil))
	})
}

func TestComputeSettlements_UsesDisplayNames(t *testing.T) {
	balances := []ParticipantBalance{
		{ParticipantID: "1", Name: "Daniel", Nickname: "Dani", Diff: dec("-12.5")},
		{ParticipantID: "2", Name: "Noa", Diff: dec("12.5")},
	}

	settlements := ComputeSettlements(balances)

	require.Len(t, settlements, 1)
	assert.Equal(t, "Dani", settlements[0].FromName)
	assert.Equal(t, "Noa", settlements[0].ToName)
	assert.Equal(t, "12.50", settlements[0].Amount.StringFixed(2))
}

func TestComputeSettlements_SettlesEveryBalance(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 11))

	for round := 0; round < 300; round++ {
		n := 2 + rng.IntN(10)
		inputs := make([]Input, n)
		total := decimal.Zero
		for i := range inputs {
			paid := decimal.Zero
			if rng.IntN(3) > 0 {
				paid = decimal.New(int64(rng.IntN(100000)), -2)
			}
			inputs[i] = Input{
				ParticipantID: string(rune('A' + i)),
				Paid:          paid,
				Weight:        1 + rng.IntN(5),
			}
			total = total.Add(paid)
		}

		balances := ComputeBalances(total, inputs)
		settlements := ComputeSettlements(balances)

		for _, s := range settlements {
			require.NotEqual(t, s.FromID, s.ToID, "round %d: self settlement", round)
			require.True(t, s.Amount.GreaterThanOrEqual(Tolerance), "round %d: amount %s", round, s.Amount)
		}
		for id, diff := range applySettlements(balances, settlements) {
			require.True(t, diff.Abs().LessThanOrEqual(Tolerance), "round %d: %s left with %s", round, id, diff)
		}
	}
}
