package tax

import (
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// FirstTimeBuyerSchedule holds the thresholds governing the first-time home
// buyer transfer tax exemption.
type FirstTimeBuyerSchedule struct {
	FullExemptionThreshold    decimal.Decimal
	PartialExemptionThreshold decimal.Decimal
	PartialExemptionAmount    decimal.Decimal
	PhaseOutStart             decimal.Decimal
	PhaseOutEnd               decimal.Decimal
}

// Exemption computes the first-time buyer exemption for a purchase price
// given the full tiered tax at that price. The base tax is waived entirely
// up to the full-exemption threshold, a flat amount applies up to the
// partial threshold, and the flat amount phases out linearly to zero
// between PhaseOutStart and PhaseOutEnd.
func (s FirstTimeBuyerSchedule) Exemption(price, baseTax decimal.Decimal) decimal.Decimal {
	switch {
	case price.LessThanOrEqual(s.FullExemptionThreshold):
		return baseTax
	case price.LessThanOrEqual(s.PartialExemptionThreshold):
		return s.PartialExemptionAmount
	case price.LessThanOrEqual(s.PhaseOutEnd):
		factor := moneyutil.PhaseOutFactor(price, s.PhaseOutStart, s.PhaseOutEnd)
		return moneyutil.RoundCents(s.PartialExemptionAmount.Mul(factor))
	default:
		return decimal.Zero
	}
}

// NewlyBuiltSchedule holds the thresholds governing the newly built home
// transfer tax exemption.
type NewlyBuiltSchedule struct {
	FullExemptionThreshold decimal.Decimal
	PhaseOutStart          decimal.Decimal
	PhaseOutEnd            decimal.Decimal
}

// Exemption computes the newly built home exemption for a purchase price
// given the full tiered tax at that price. Unlike the first-time buyer
// schedule, the phase-out interpolates the full tax amount itself rather
// than a flat figure.
func (s NewlyBuiltSchedule) Exemption(price, baseTax decimal.Decimal) decimal.Decimal {
	switch {
	case price.LessThanOrEqual(s.FullExemptionThreshold):
		return baseTax
	case price.LessThanOrEqual(s.PhaseOutEnd):
		factor := moneyutil.PhaseOutFactor(price, s.PhaseOutStart, s.PhaseOutEnd)
		return moneyutil.RoundCents(baseTax.Mul(factor))
	default:
		return decimal.Zero
	}
}

// CombinedExemption returns the larger of two exemptions. Exemption classes
// never stack; only the most favourable one applies.
func CombinedExemption(firstTimeBuyer, newlyBuilt decimal.Decimal) decimal.Decimal {
	return decimal.Max(firstTimeBuyer, newlyBuilt)
}
