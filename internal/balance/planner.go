package balance

import "github.com/shopspring/decimal"

// =============================================================================
// SETTLEMENT PLANNER
// Pairs debtors with creditors in list order until every balance is cleared
// =============================================================================

// Settlement instructs From to transfer Amount to To
type Settlement struct {
	FromID   string
	FromName string
	ToID     string
	ToName   string
	Amount   decimal.Decimal
}

// position is a debtor's or creditor's outstanding amount during planning
type position struct {
	id        string
	name      string
	remaining decimal.Decimal
}

// ComputeSettlements returns the transfers that zero out balances.
//
// Debtors and creditors keep their order from balances and are matched with
// two cursors: each step moves the smaller of the two outstanding amounts and
// advances whichever side is cleared. This is a greedy match, not a minimum
// transaction solver, and callers rely on its exact output order.
func ComputeSettlements(balances []ParticipantBalance) []Settlement {
	debtors, creditors := partition(balances)

	settlements := make([]Settlement, 0, max(len(debtors), len(creditors)))
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := debtors[i], creditors[j]

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		if amount.GreaterThanOrEqual(Tolerance) {
			settlements = append(settlements, Settlement{
				FromID:   debtor.id,
				FromName: debtor.name,
				ToID:     creditor.id,
				ToName:   creditor.name,
				Amount:   RoundMoney(amount),
			})
			debtor.remaining = RoundMoney(debtor.remaining.Sub(amount))
			creditor.remaining = RoundMoney(creditor.remaining.Sub(amount))
		}

		if debtor.remaining.LessThan(Tolerance) {
			i++
		}
		if creditor.remaining.LessThan(Tolerance) {
			j++
		}
	}

	return settlements
}

// partition splits balances into debtors and creditors, dropping anyone
// within Tolerance of zero
func partition(balances []ParticipantBalance) (debtors, creditors []*position) {
	negTolerance := Tolerance.Neg()
	for _, b := range balances {
		switch {
		case b.Diff.LessThan(negTolerance):
			debtors = append(debtors, &position{
				id:        b.ParticipantID,
				name:      b.DisplayName(),
				remaining: RoundMoney(b.Diff.Neg()),
			})
		case b.Diff.GreaterThan(Tolerance):
			creditors = append(creditors, &position{
				id:        b.ParticipantID,
				name:      b.DisplayName(),
				remaining: RoundMoney(b.Diff),
			})
		}
	}
	return debtors, creditors
}
