// Package buyer implements the acquisition-cost and carrying-cost engine.
package buyer

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/internal/config"
	"github.com/iwvelando/bc-property-forecast/internal/mortgage"
	"github.com/iwvelando/bc-property-forecast/internal/tax"
	"github.com/iwvelando/bc-property-forecast/pkg/constants"
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(constants.MonthsPerYear)
)

// Result is the immutable snapshot of all buyer-side figures.
type Result struct {
	DownPayment            decimal.Decimal
	PTTAmount              decimal.Decimal
	PTTExemption           decimal.Decimal
	ClosingCosts           decimal.Decimal
	TotalCashToClose       decimal.Decimal
	MortgageAmount         decimal.Decimal
	MonthlyMortgagePayment decimal.Decimal
	MonthlyPropertyTax     decimal.Decimal
	MonthlyStrataFee       decimal.Decimal
	MonthlyInsurance       decimal.Decimal
	MonthlyUtilities       decimal.Decimal
	TotalMonthlyCarry      decimal.Decimal
	MonthlyRentalIncome    decimal.Decimal
	NetMonthlyCashFlow     decimal.Decimal
	HomeownerGrantApplied  bool
}

// Calculator computes buyer acquisition costs and monthly carrying costs
// against a shared immutable rate table.
type Calculator struct {
	rates  *config.Rates
	logger *zap.Logger
}

// New creates a buyer Calculator. A nil logger falls back to a nop logger.
func New(rates *config.Rates, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{rates: rates, logger: logger}
}

// ComputePTT calculates the property transfer tax and the exemption applied
// against it. When both the first-time buyer and newly built exemptions
// qualify, the larger one applies; they never stack.
func (c *Calculator) ComputePTT(purchase config.Purchase) (decimal.Decimal, decimal.Decimal) {
	tt := c.rates.TransferTax
	baseTax := tax.ComputeTiered(purchase.Price, tt.Tiers, tt.ExcessRate)

	exemption := decimal.Zero
	if purchase.FirstTimeBuyer {
		exemption = tax.CombinedExemption(exemption, tt.FirstTimeBuyer.Exemption(purchase.Price, baseTax))
	}
	if purchase.NewlyBuilt {
		exemption = tax.CombinedExemption(exemption, tt.NewlyBuilt.Exemption(purchase.Price, baseTax))
	}

	amount := decimal.Max(decimal.Zero, baseTax.Sub(exemption))

	c.logger.Debug(fmt.Sprintf("transfer tax %s with exemption %s on price %s",
		amount, exemption, purchase.Price),
		zap.String("op", "buyer.ComputePTT"),
	)

	return amount, exemption
}

// ClosingCosts sums the flat legal, title insurance, and appraisal fees,
// plus the home inspection fee when requested.
func (c *Calculator) ClosingCosts(includeInspection bool) decimal.Decimal {
	fees := c.rates.Fees
	costs := fees.LegalPurchase.Add(fees.TitleInsurance).Add(fees.Appraisal)
	if includeInspection {
		costs = costs.Add(fees.HomeInspection)
	}
	return costs
}

// applyHomeownerGrant reduces the annual property tax by the grant amount
// when the purchase price (standing in for assessed value) is below the
// grant threshold. The grant never drives the tax negative.
func (c *Calculator) applyHomeownerGrant(annualPropertyTax, purchasePrice decimal.Decimal) (decimal.Decimal, bool) {
	grant := c.rates.HomeownerGrant
	if purchasePrice.LessThan(grant.Threshold) {
		return decimal.Max(decimal.Zero, annualPropertyTax.Sub(grant.Amount)), true
	}
	return annualPropertyTax, false
}

// MonthlyCarry calculates the total monthly carrying cost, the monthly
// mortgage payment, and whether the homeowner grant applied.
func (c *Calculator) MonthlyCarry(financing config.Financing, holding config.HoldingCosts, purchasePrice decimal.Decimal) (decimal.Decimal, decimal.Decimal, bool, error) {
	principal := purchasePrice.Sub(financing.DownPayment)

	payment, err := mortgage.Payment(principal, financing.AnnualInterestRate, financing.AmortizationYears, mortgage.Monthly)
	if err != nil {
		return decimal.Zero, decimal.Zero, false, err
	}

	annualPropertyTax, grantApplied := c.applyHomeownerGrant(holding.PropertyTaxAnnual, purchasePrice)

	total := payment.
		Add(annualPropertyTax.Div(twelve)).
		Add(holding.StrataFeeMonthly).
		Add(holding.InsuranceAnnual.Div(twelve)).
		Add(holding.UtilitiesMonthly)

	return moneyutil.RoundCents(total), payment, grantApplied, nil
}

// NetCashFlow calculates the net monthly cash flow. Without rental income
// the flow is simply the negated carrying cost; otherwise the rent is
// reduced by the vacancy rate first.
func (c *Calculator) NetCashFlow(monthlyCarry decimal.Decimal, rental *config.Rental) decimal.Decimal {
	if rental == nil {
		return monthlyCarry.Neg()
	}
	effectiveRent := rental.MonthlyRent.Mul(one.Sub(moneyutil.FromPercent(rental.VacancyRate)))
	return moneyutil.RoundCents(effectiveRent.Sub(monthlyCarry))
}

// ComputeAll validates the inputs and produces the full buyer Result.
func (c *Calculator) ComputeAll(purchase config.Purchase, financing config.Financing, holding config.HoldingCosts, rental *config.Rental, includeInspection bool) (Result, error) {
	if err := purchase.Validate(); err != nil {
		return Result{}, err
	}
	if err := financing.Validate(purchase.Price); err != nil {
		return Result{}, err
	}
	if err := holding.Validate(); err != nil {
		return Result{}, err
	}
	if rental != nil {
		if err := rental.Validate(); err != nil {
			return Result{}, err
		}
	}

	pttAmount, pttExemption := c.ComputePTT(purchase)
	closingCosts := c.ClosingCosts(includeInspection)
	totalCashToClose := financing.DownPayment.Add(pttAmount).Add(closingCosts)

	totalMonthlyCarry, mortgagePayment, grantApplied, err := c.MonthlyCarry(financing, holding, purchase.Price)
	if err != nil {
		return Result{}, err
	}

	netMonthlyCashFlow := c.NetCashFlow(totalMonthlyCarry, rental)

	annualPropertyTax, _ := c.applyHomeownerGrant(holding.PropertyTaxAnnual, purchase.Price)

	monthlyRentalIncome := decimal.Zero
	if rental != nil {
		monthlyRentalIncome = moneyutil.RoundCents(
			rental.MonthlyRent.Mul(one.Sub(moneyutil.FromPercent(rental.VacancyRate))))
	}

	c.logger.Debug(fmt.Sprintf("total cash to close %s with monthly carry %s", totalCashToClose, totalMonthlyCarry),
		zap.String("op", "buyer.ComputeAll"),
	)

	return Result{
		DownPayment:            financing.DownPayment,
		PTTAmount:              pttAmount,
		PTTExemption:           pttExemption,
		ClosingCosts:           closingCosts,
		TotalCashToClose:       totalCashToClose,
		MortgageAmount:         purchase.Price.Sub(financing.DownPayment),
		MonthlyMortgagePayment: mortgagePayment,
		MonthlyPropertyTax:     moneyutil.RoundCents(annualPropertyTax.Div(twelve)),
		MonthlyStrataFee:       holding.StrataFeeMonthly,
		MonthlyInsurance:       moneyutil.RoundCents(holding.InsuranceAnnual.Div(twelve)),
		MonthlyUtilities:       holding.UtilitiesMonthly,
		TotalMonthlyCarry:      totalMonthlyCarry,
		MonthlyRentalIncome:    monthlyRentalIncome,
		NetMonthlyCashFlow:     netMonthlyCashFlow,
		HomeownerGrantApplied:  grantApplied,
	}, nil
}
