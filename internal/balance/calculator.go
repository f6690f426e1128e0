package balance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// BALANCE CALCULATOR
// Splits the total spend pro-rata by weight and nets it against what each
// participant actually paid
// =============================================================================

// Input holds one participant's raw figures for a balance computation
type Input struct {
	ParticipantID string
	Name          string
	Nickname      string
	Paid          decimal.Decimal // Sum of this participant's payments
	Weight        int             // Shares of the total, e.g. days attended
}

// ParticipantBalance is a participant's position after the split.
// Diff is positive when the participant is owed money and negative when they owe.
type ParticipantBalance struct {
	ParticipantID string
	Name          string
	Nickname      string
	Paid          decimal.Decimal
	Expected      decimal.Decimal
	Diff          decimal.Decimal
}

// DisplayName returns the nickname when set, otherwise the name
func (b ParticipantBalance) DisplayName() string {
	if b.Nickname != "" {
		return b.Nickname
	}
	return b.Name
}

// ComputeBalances returns each participant's expected share of total and the
// resulting balance, in input order.
//
// Shares are allocated in whole cents by largest remainder: everyone gets the
// floor of their exact share, then the leftover cents go one at a time to the
// largest fractional parts, later participants first on ties. No share is more
// than a cent away from its exact value and the shares add up to the total.
func ComputeBalances(total decimal.Decimal, inputs []Input) []ParticipantBalance {
	balances := make([]ParticipantBalance, len(inputs))
	if len(inputs) == 0 {
		return balances
	}

	total = RoundMoney(total)
	for i, in := range inputs {
		balances[i] = ParticipantBalance{
			ParticipantID: in.ParticipantID,
			Name:          in.Name,
			Nickname:      in.Nickname,
			Paid:          RoundMoney(in.Paid),
		}
	}

	shares := allocateCents(total.Shift(moneyPlaces), inputs)
	for i := range balances {
		balances[i].Expected = shares[i].Shift(-moneyPlaces)
		balances[i].Diff = balances[i].Paid.Sub(balances[i].Expected)
	}

	return balances
}

// allocateCents splits totalCents pro-rata by weight into whole cents
func allocateCents(totalCents decimal.Decimal, inputs []Input) []decimal.Decimal {
	var totalWeight int64
	for _, in := range inputs {
		totalWeight += int64(effectiveWeight(in.Weight))
	}
	divisor := decimal.NewFromInt(totalWeight)

	shares := make([]decimal.Decimal, len(inputs))
	remainders := make([]decimal.Decimal, len(inputs))
	allocated := decimal.Zero
	for i, in := range inputs {
		weighted := totalCents.Mul(decimal.NewFromInt(int64(effectiveWeight(in.Weight))))
		shares[i], remainders[i] = weighted.QuoRem(divisor, 0)
		allocated = allocated.Add(shares[i])
	}

	order := make([]int, len(inputs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := remainders[order[a]], remainders[order[b]]
		if !ra.Equal(rb) {
			return ra.GreaterThan(rb)
		}
		return order[a] > order[b]
	})

	leftover := totalCents.Sub(allocated).IntPart()
	for k := int64(0); k < leftover; k++ {
		i := order[k%int64(len(order))]
		shares[i] = shares[i].Add(decimal.NewFromInt(1))
	}

	return shares
}

// effectiveWeight floors a weight at one share
func effectiveWeight(weight int) int {
	if weight < 1 {
		return 1
	}
	return weight
}
