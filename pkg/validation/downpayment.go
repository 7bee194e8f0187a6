// Package validation provides advisory checks on scenario inputs.
package validation

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/internal/config"
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

var (
	fiveHundredK = decimal.NewFromInt(500000)
	oneMillion   = decimal.NewFromInt(1000000)

	fivePercent   = decimal.RequireFromString("0.05")
	tenPercent    = decimal.RequireFromString("0.10")
	twentyPercent = decimal.RequireFromString("0.20")
)

// MinimumDownPayment returns the CMHC minimum down payment for a purchase
// price: 5% up to $500k, 5% on the first $500k plus 10% on the remainder up
// to $1M, and 20% above $1M.
func MinimumDownPayment(purchasePrice decimal.Decimal) decimal.Decimal {
	var minimum decimal.Decimal
	switch {
	case purchasePrice.LessThanOrEqual(fiveHundredK):
		minimum = purchasePrice.Mul(fivePercent)
	case purchasePrice.LessThanOrEqual(oneMillion):
		minimum = fiveHundredK.Mul(fivePercent).
			Add(purchasePrice.Sub(fiveHundredK).Mul(tenPercent))
	default:
		minimum = purchasePrice.Mul(twentyPercent)
	}
	return moneyutil.RoundCents(minimum)
}

// DownPaymentWarning returns a human-readable warning when the down payment
// is below the CMHC minimum for the purchase price, or an empty string.
func DownPaymentWarning(purchasePrice, downPayment decimal.Decimal) string {
	minimum := MinimumDownPayment(purchasePrice)
	if downPayment.LessThan(minimum) {
		return fmt.Sprintf("down payment %s is below the CMHC minimum of %s for a price of %s",
			downPayment, minimum, purchasePrice)
	}
	return ""
}

// ScenarioWarnings collects advisory warnings across all active scenarios.
func ScenarioWarnings(scenarios []config.Scenario) []string {
	var warnings []string
	for _, scenario := range scenarios {
		if !scenario.Active {
			continue
		}
		if warning := DownPaymentWarning(scenario.Purchase.Price, scenario.Financing.DownPayment); warning != "" {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %s", scenario.Name, warning))
		}
	}
	return warnings
}
