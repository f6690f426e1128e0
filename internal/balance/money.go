// Package balance computes who owes whom on a shared trip.
//
// ComputeBalances turns a total spend and each participant's paid sum and
// weight into a pro-rata expected share and a signed balance.
// ComputeSettlements turns those balances into point-to-point transfers.
// Both are pure functions; money is carried as exact decimals and rounded to
// cents at fixed points so results never drift.
package balance

import "github.com/shopspring/decimal"

// moneyPlaces is the number of fractional digits money is rounded to.
const moneyPlaces = 2

// Tolerance is the smallest amount treated as an outstanding debt.
// Anything within ±Tolerance of zero counts as settled.
var Tolerance = decimal.New(1, -moneyPlaces)

// RoundMoney rounds d to cents, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// MoneyFromFloat converts a float amount (as received over JSON) into a
// cent-rounded decimal.
func MoneyFromFloat(f float64) decimal.Decimal {
	return RoundMoney(decimal.NewFromFloat(f))
}

// MoneyToFloat renders d for presentation, rounded to cents.
func MoneyToFloat(d decimal.Decimal) float64 {
	return RoundMoney(d).InexactFloat64()
}

// SumMoney adds up amounts. An empty list sums to zero.
func SumMoney(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
