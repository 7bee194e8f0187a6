package config

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/pkg/constants"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// ScenarioFile holds all analysis scenarios plus logging and output
// preferences.
type ScenarioFile struct {
	Scenarios []Scenario
	Logging   LoggingConfig
	Output    OutputConfig
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputFile string // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string // pretty, csv
}

// Scenario describes one purchase/hold/sale cycle to analyze.
type Scenario struct {
	Name                 string
	Active               bool
	IncludeInspection    bool
	UseHighInclusionRate bool
	// AcquisitionCostOverride replaces the buyer engine's total cash to
	// close as the adjusted cost base input when positive.
	AcquisitionCostOverride decimal.Decimal
	Purchase                Purchase
	Financing               Financing
	Holding                 HoldingCosts
	Rental                  *Rental
	Sale                    Sale
}

// Purchase holds the property acquisition details.
type Purchase struct {
	Price          decimal.Decimal
	FirstTimeBuyer bool
	NewlyBuilt     bool
}

// Financing holds the mortgage financing details. AnnualInterestRate is a
// percentage (5.5 means 5.5%).
type Financing struct {
	DownPayment        decimal.Decimal
	AnnualInterestRate decimal.Decimal
	AmortizationYears  int
}

// HoldingCosts holds the recurring ownership costs.
type HoldingCosts struct {
	PropertyTaxAnnual decimal.Decimal
	StrataFeeMonthly  decimal.Decimal
	InsuranceAnnual   decimal.Decimal
	UtilitiesMonthly  decimal.Decimal
}

// Rental holds optional rental income terms. VacancyRate is a percentage.
type Rental struct {
	MonthlyRent decimal.Decimal
	VacancyRate decimal.Decimal
}

// Sale holds the disposition details. MarginalTaxRate is a percentage.
type Sale struct {
	Price               decimal.Decimal
	HoldingPeriodYears  decimal.Decimal
	PrincipalResidence  bool
	MarginalTaxRate     decimal.Decimal
	CapitalImprovements decimal.Decimal
}

// LoadScenarios reads the YAML-formatted scenario configuration at
// configPath and validates every scenario's inputs.
func LoadScenarios(configPath string) (*ScenarioFile, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}

	var raw rawScenarioFile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unable to decode scenario file into struct: %w", err)
	}

	conf := raw.toScenarioFile()
	for i := range conf.Scenarios {
		if err := conf.Scenarios[i].Validate(); err != nil {
			return nil, err
		}
	}

	return conf, nil
}

// Validate rejects invalid scenario inputs with the offending field named.
// Validation never clamps; the caller must fix the input.
func (s *Scenario) Validate() error {
	if err := s.Purchase.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if err := s.Financing.Validate(s.Purchase.Price); err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if err := s.Holding.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if s.Rental != nil {
		if err := s.Rental.Validate(); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	if err := s.Sale.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if s.AcquisitionCostOverride.IsNegative() {
		return fmt.Errorf("scenario %s: acquisition cost override must be non-negative, got %s",
			s.Name, s.AcquisitionCostOverride)
	}
	return nil
}

// Validate checks the purchase inputs.
func (p Purchase) Validate() error {
	if p.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("purchase price must be positive, got %s", p.Price)
	}
	return nil
}

// Validate checks the financing inputs against the purchase price.
func (f Financing) Validate(purchasePrice decimal.Decimal) error {
	if f.DownPayment.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("down payment must be positive, got %s", f.DownPayment)
	}
	if f.DownPayment.GreaterThanOrEqual(purchasePrice) {
		return fmt.Errorf("down payment %s must be below the purchase price %s", f.DownPayment, purchasePrice)
	}
	if err := validatePercentage("annual interest rate", f.AnnualInterestRate); err != nil {
		return err
	}
	if f.AmortizationYears <= 0 || f.AmortizationYears > constants.MaxAmortizationYears {
		return fmt.Errorf("amortization years must be within (0, %d], got %d",
			constants.MaxAmortizationYears, f.AmortizationYears)
	}
	return nil
}

// Validate checks the holding cost inputs.
func (h HoldingCosts) Validate() error {
	for _, cost := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"annual property tax", h.PropertyTaxAnnual},
		{"monthly strata fee", h.StrataFeeMonthly},
		{"annual insurance", h.InsuranceAnnual},
		{"monthly utilities", h.UtilitiesMonthly},
	} {
		if cost.value.IsNegative() {
			return fmt.Errorf("%s must be non-negative, got %s", cost.name, cost.value)
		}
	}
	return nil
}

// Validate checks the rental inputs.
func (r Rental) Validate() error {
	if r.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent must be non-negative, got %s", r.MonthlyRent)
	}
	return validatePercentage("vacancy rate", r.VacancyRate)
}

// Validate checks the sale inputs.
func (s Sale) Validate() error {
	if s.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("sale price must be positive, got %s", s.Price)
	}
	if s.HoldingPeriodYears.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("holding period years must be positive, got %s", s.HoldingPeriodYears)
	}
	if err := validatePercentage("marginal tax rate", s.MarginalTaxRate); err != nil {
		return err
	}
	if s.CapitalImprovements.IsNegative() {
		return fmt.Errorf("capital improvements must be non-negative, got %s", s.CapitalImprovements)
	}
	return nil
}

func validatePercentage(name string, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(constants.PercentageMultiplier)) {
		return fmt.Errorf("%s must be within [0, 100], got %s", name, value)
	}
	return nil
}
