// Package moneyutil provides common decimal arithmetic helpers for currency
// math.
package moneyutil

import (
	"github.com/iwvelando/bc-property-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(constants.PercentageMultiplier)
)

// RoundCents rounds a value to two decimals, i.e. to represent real
// currency. Halves round away from zero.
func RoundCents(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyDecimalPlaces)
}

// FromPercent converts a percentage figure to its fractional form
// (e.g., 5.5 -> 0.055).
func FromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// PercentOf applies a percentage to a value.
func PercentOf(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred)
}

// ToPercent converts a fractional ratio to a percentage figure
// (e.g., 0.055 -> 5.5).
func ToPercent(ratio decimal.Decimal) decimal.Decimal {
	return ratio.Mul(hundred)
}

// PhaseOutFactor returns the linear interpolation factor
// 1 - (value-start)/(end-start), clamped to [0, 1]. A degenerate span
// yields 0.
func PhaseOutFactor(value, start, end decimal.Decimal) decimal.Decimal {
	span := end.Sub(start)
	if span.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	factor := one.Sub(value.Sub(start).Div(span))
	if factor.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if factor.GreaterThan(one) {
		return one
	}
	return factor
}
