// Package config defines the data structures related to the rate table and
// analysis scenarios and includes functions for loading and validating them.
package config

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/internal/tax"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Rates holds the full jurisdiction rate table. It is immutable once
// LoadRates returns; engines share a single instance by pointer and may be
// called concurrently.
type Rates struct {
	TransferTax    TransferTax
	HomeownerGrant HomeownerGrant
	CapitalGains   CapitalGains
	Commission     Commission
	Fees           Fees
	SpeculationTax SpeculationTax
}

// TransferTax holds the property transfer tax brackets and the exemption
// schedules layered on top of them.
type TransferTax struct {
	Tiers          []tax.Tier
	ExcessRate     decimal.Decimal
	FirstTimeBuyer tax.FirstTimeBuyerSchedule
	NewlyBuilt     tax.NewlyBuiltSchedule
}

// HomeownerGrant holds the flat grant applied against annual property tax
// for properties assessed below Threshold.
type HomeownerGrant struct {
	Threshold decimal.Decimal
	Amount    decimal.Decimal
}

// CapitalGains holds the taxable inclusion rates for capital gains.
type CapitalGains struct {
	InclusionRate     decimal.Decimal
	HighInclusionRate decimal.Decimal
}

// Commission holds the realtor commission brackets.
type Commission struct {
	Tiers      []tax.Tier
	ExcessRate decimal.Decimal
}

// Fees holds the flat transaction fee constants.
type Fees struct {
	LegalPurchase  decimal.Decimal
	TitleInsurance decimal.Decimal
	Appraisal      decimal.Decimal
	HomeInspection decimal.Decimal
	LegalSale      decimal.Decimal
}

// SpeculationTax holds the speculation and vacancy tax rates. They ride
// along in the rate file; no calculation currently consumes them.
type SpeculationTax struct {
	ResidentRate decimal.Decimal
	ForeignRate  decimal.Decimal
}

// LoadRates reads and validates the TOML-formatted rate table at ratesPath.
// Any failure here is fatal to the caller; no calculation may proceed
// without a valid rate table.
func LoadRates(ratesPath string) (*Rates, error) {
	v := viper.New()
	v.SetConfigFile(ratesPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading rates file: %w", err)
	}

	var raw rawRates
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unable to decode rates file into struct: %w", err)
	}

	rates := raw.toRates()
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rates file %s: %w", ratesPath, err)
	}

	return rates, nil
}

// Validate checks the structural invariants of the rate table: strictly
// increasing tier thresholds, non-negative rates and fees, and ordered
// exemption thresholds.
func (r *Rates) Validate() error {
	if err := validateTiers("transfer_tax", r.TransferTax.Tiers, r.TransferTax.ExcessRate); err != nil {
		return err
	}
	if err := validateTiers("commission", r.Commission.Tiers, r.Commission.ExcessRate); err != nil {
		return err
	}

	ftb := r.TransferTax.FirstTimeBuyer
	if ftb.PartialExemptionAmount.IsNegative() {
		return fmt.Errorf("first_time_buyer partial exemption amount must be non-negative, got %s", ftb.PartialExemptionAmount)
	}
	if ftb.FullExemptionThreshold.GreaterThan(ftb.PartialExemptionThreshold) {
		return fmt.Errorf("first_time_buyer full exemption threshold %s exceeds partial threshold %s",
			ftb.FullExemptionThreshold, ftb.PartialExemptionThreshold)
	}
	if ftb.PartialExemptionThreshold.GreaterThan(ftb.PhaseOutStart) {
		return fmt.Errorf("first_time_buyer partial threshold %s exceeds phase-out start %s",
			ftb.PartialExemptionThreshold, ftb.PhaseOutStart)
	}
	if ftb.PhaseOutStart.GreaterThanOrEqual(ftb.PhaseOutEnd) {
		return fmt.Errorf("first_time_buyer phase-out start %s must be below phase-out end %s",
			ftb.PhaseOutStart, ftb.PhaseOutEnd)
	}

	nb := r.TransferTax.NewlyBuilt
	if nb.FullExemptionThreshold.GreaterThan(nb.PhaseOutStart) {
		return fmt.Errorf("newly_built full exemption threshold %s exceeds phase-out start %s",
			nb.FullExemptionThreshold, nb.PhaseOutStart)
	}
	if nb.PhaseOutStart.GreaterThanOrEqual(nb.PhaseOutEnd) {
		return fmt.Errorf("newly_built phase-out start %s must be below phase-out end %s",
			nb.PhaseOutStart, nb.PhaseOutEnd)
	}

	if r.HomeownerGrant.Threshold.IsNegative() || r.HomeownerGrant.Amount.IsNegative() {
		return fmt.Errorf("homeowner_grant threshold and amount must be non-negative")
	}

	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"capital_gains inclusion_rate", r.CapitalGains.InclusionRate},
		{"capital_gains high_inclusion_rate", r.CapitalGains.HighInclusionRate},
	} {
		if rate.value.IsNegative() || rate.value.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s must be within [0, 1], got %s", rate.name, rate.value)
		}
	}

	for _, fee := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"legal_purchase", r.Fees.LegalPurchase},
		{"title_insurance", r.Fees.TitleInsurance},
		{"appraisal", r.Fees.Appraisal},
		{"home_inspection", r.Fees.HomeInspection},
		{"legal_sale", r.Fees.LegalSale},
	} {
		if fee.value.IsNegative() {
			return fmt.Errorf("fee %s must be non-negative, got %s", fee.name, fee.value)
		}
	}

	return nil
}

func validateTiers(section string, tiers []tax.Tier, excessRate decimal.Decimal) error {
	previousBound := decimal.Zero
	for i, tier := range tiers {
		if tier.UpperBound.LessThanOrEqual(previousBound) {
			return fmt.Errorf("%s tier %d upper bound %s must exceed previous bound %s",
				section, i, tier.UpperBound, previousBound)
		}
		if tier.Rate.IsNegative() {
			return fmt.Errorf("%s tier %d rate must be non-negative, got %s", section, i, tier.Rate)
		}
		previousBound = tier.UpperBound
	}
	if excessRate.IsNegative() {
		return fmt.Errorf("%s excess rate must be non-negative, got %s", section, excessRate)
	}
	return nil
}
