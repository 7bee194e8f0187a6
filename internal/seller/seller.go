// Package seller implements the disposition engine: realtor commission,
// capital gains, and net sale proceeds.
package seller

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/internal/config"
	"github.com/iwvelando/bc-property-forecast/internal/tax"
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Result is the immutable snapshot of all seller-side figures.
type Result struct {
	GrossProceeds               decimal.Decimal
	Commission                  decimal.Decimal
	LegalFees                   decimal.Decimal
	AdjustedCostBase            decimal.Decimal
	CapitalGain                 decimal.Decimal
	TaxableCapitalGain          decimal.Decimal
	CapitalGainsTax             decimal.Decimal
	NetProceeds                 decimal.Decimal
	PrincipalResidenceExemption bool
}

// Calculator computes seller exit costs and net proceeds against a shared
// immutable rate table.
type Calculator struct {
	rates  *config.Rates
	logger *zap.Logger
}

// New creates a seller Calculator. A nil logger falls back to a nop logger.
func New(rates *config.Rates, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{rates: rates, logger: logger}
}

// Commission calculates the realtor commission using the tiered commission
// brackets.
func (c *Calculator) Commission(salePrice decimal.Decimal) decimal.Decimal {
	return tax.ComputeTiered(salePrice, c.rates.Commission.Tiers, c.rates.Commission.ExcessRate)
}

// CapitalGain calculates the capital gain and its taxable portion. A
// principal residence has no taxable gain regardless of sign, and losses
// are never deductible in this model.
func CapitalGain(salePrice, adjustedCostBase decimal.Decimal, principalResidence bool, inclusionRate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	gain := moneyutil.RoundCents(salePrice.Sub(adjustedCostBase))

	taxableGain := decimal.Zero
	if !principalResidence && gain.GreaterThan(decimal.Zero) {
		taxableGain = moneyutil.RoundCents(gain.Mul(inclusionRate))
	}

	return gain, taxableGain
}

// CapitalGainsTax calculates the tax owed on a taxable capital gain at the
// given marginal rate percentage.
func CapitalGainsTax(taxableCapitalGain, marginalTaxRate decimal.Decimal) decimal.Decimal {
	return moneyutil.RoundCents(moneyutil.PercentOf(taxableCapitalGain, marginalTaxRate))
}

// ComputeAll validates the sale inputs and produces the full seller Result.
// acquisitionCosts is the buyer's total cash to close unless the caller
// overrides it; inclusionRate nil selects the configured default.
func (c *Calculator) ComputeAll(sale config.Sale, acquisitionCosts decimal.Decimal, inclusionRate *decimal.Decimal) (Result, error) {
	if err := sale.Validate(); err != nil {
		return Result{}, err
	}
	if acquisitionCosts.IsNegative() {
		return Result{}, fmt.Errorf("acquisition costs must be non-negative, got %s", acquisitionCosts)
	}

	inclusion := c.rates.CapitalGains.InclusionRate
	if inclusionRate != nil {
		inclusion = *inclusionRate
	}

	commission := c.Commission(sale.Price)
	legalFees := c.rates.Fees.LegalSale
	adjustedCostBase := acquisitionCosts.Add(sale.CapitalImprovements)

	gain, taxableGain := CapitalGain(sale.Price, adjustedCostBase, sale.PrincipalResidence, inclusion)
	gainsTax := CapitalGainsTax(taxableGain, sale.MarginalTaxRate)

	netProceeds := sale.Price.Sub(commission).Sub(legalFees).Sub(gainsTax)

	c.logger.Debug(fmt.Sprintf("net proceeds %s after commission %s and capital gains tax %s",
		netProceeds, commission, gainsTax),
		zap.String("op", "seller.ComputeAll"),
	)

	return Result{
		GrossProceeds:               sale.Price,
		Commission:                  commission,
		LegalFees:                   legalFees,
		AdjustedCostBase:            adjustedCostBase,
		CapitalGain:                 gain,
		TaxableCapitalGain:          taxableGain,
		CapitalGainsTax:             gainsTax,
		NetProceeds:                 netProceeds,
		PrincipalResidenceExemption: sale.PrincipalResidence,
	}, nil
}
