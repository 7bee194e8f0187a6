// Package tax implements the tiered marginal-rate evaluator shared by the
// property transfer tax and realtor commission calculations, plus the
// transfer tax exemption schedules.
package tax

import (
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// Tier is one marginal bracket. Rate applies to the slice of the amount
// falling between the previous tier's UpperBound and this tier's
// UpperBound. Tiers must be ordered by strictly increasing UpperBound.
type Tier struct {
	UpperBound decimal.Decimal
	Rate       decimal.Decimal
}

// ComputeTiered accumulates marginal tax over the ordered tiers; any amount
// beyond the final tier's bound is taxed at excessRate. The result is
// rounded to cents. With no tiers the entire amount is taxed at excessRate.
func ComputeTiered(amount decimal.Decimal, tiers []Tier, excessRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	remaining := amount
	previousBound := decimal.Zero

	for _, tier := range tiers {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		slice := decimal.Min(remaining, tier.UpperBound.Sub(previousBound))
		total = total.Add(slice.Mul(tier.Rate))
		remaining = remaining.Sub(slice)
		previousBound = tier.UpperBound
	}

	if remaining.GreaterThan(decimal.Zero) {
		total = total.Add(remaining.Mul(excessRate))
	}

	return moneyutil.RoundCents(total)
}
