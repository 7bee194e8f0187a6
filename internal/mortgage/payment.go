// Package mortgage computes amortized loan payments.
package mortgage

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/pkg/constants"
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// Frequency selects how often a payment is made.
type Frequency string

// Supported payment frequencies.
const (
	Monthly  Frequency = "monthly"
	Biweekly Frequency = "biweekly"
	Weekly   Frequency = "weekly"
)

// PeriodsPerYear maps a frequency to its number of payment periods per year.
func (f Frequency) PeriodsPerYear() (int64, error) {
	switch f {
	case Monthly:
		return constants.MonthsPerYear, nil
	case Biweekly:
		return constants.BiweeklyPeriodsPerYear, nil
	case Weekly:
		return constants.WeeklyPeriodsPerYear, nil
	default:
		return 0, fmt.Errorf("unknown payment frequency %q", string(f))
	}
}

var one = decimal.NewFromInt(1)

// Payment calculates the periodic payment for an amortized loan using the
// standard annuity formula P * i * (1+i)^N / ((1+i)^N - 1), where i is the
// periodic rate and N the total number of periods. annualRate is a
// percentage (5.5 means 5.5%). A non-positive principal yields a zero
// payment and a zero rate degrades to straight linear amortization; both
// are policies, not errors. The result is rounded to cents.
func Payment(principal, annualRate decimal.Decimal, amortizationYears int, frequency Frequency) (decimal.Decimal, error) {
	periodsPerYear, err := frequency.PeriodsPerYear()
	if err != nil {
		return decimal.Zero, err
	}
	if amortizationYears <= 0 {
		return decimal.Zero, fmt.Errorf("amortization years must be positive, got %d", amortizationYears)
	}

	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	totalPeriods := decimal.NewFromInt(int64(amortizationYears) * periodsPerYear)

	if annualRate.IsZero() {
		return moneyutil.RoundCents(principal.Div(totalPeriods)), nil
	}

	periodicRate := moneyutil.FromPercent(annualRate).Div(decimal.NewFromInt(periodsPerYear))
	power := one.Add(periodicRate).Pow(totalPeriods)
	payment := principal.Mul(periodicRate).Mul(power).Div(power.Sub(one))

	return moneyutil.RoundCents(payment), nil
}
