package config

import (
	"github.com/iwvelando/bc-property-forecast/internal/tax"
	"github.com/shopspring/decimal"
)

// Viper decodes config files into the raw float structs below; the
// conversion functions lift them into the typed decimal structures the
// engines consume. Decimal conversion uses the shortest representation of
// each float, matching the literal written in the file.

type rawRates struct {
	TransferTax    rawTransferTax    `mapstructure:"transfer_tax"`
	HomeownerGrant rawHomeownerGrant `mapstructure:"homeowner_grant"`
	CapitalGains   rawCapitalGains   `mapstructure:"capital_gains"`
	Commission     rawCommission     `mapstructure:"commission"`
	Fees           rawFees           `mapstructure:"fees"`
	SpeculationTax rawSpeculationTax `mapstructure:"speculation_tax"`
}

type rawTier struct {
	UpperBound float64 `mapstructure:"upper_bound"`
	Rate       float64 `mapstructure:"rate"`
}

type rawTransferTax struct {
	Tiers          []rawTier         `mapstructure:"tiers"`
	ExcessRate     float64           `mapstructure:"excess_rate"`
	FirstTimeBuyer rawFirstTimeBuyer `mapstructure:"first_time_buyer"`
	NewlyBuilt     rawNewlyBuilt     `mapstructure:"newly_built"`
}

type rawFirstTimeBuyer struct {
	FullExemptionThreshold    float64 `mapstructure:"full_exemption_threshold"`
	PartialExemptionThreshold float64 `mapstructure:"partial_exemption_threshold"`
	PartialExemptionAmount    float64 `mapstructure:"partial_exemption_amount"`
	PhaseOutStart             float64 `mapstructure:"phase_out_start"`
	PhaseOutEnd               float64 `mapstructure:"phase_out_end"`
}

type rawNewlyBuilt struct {
	FullExemptionThreshold float64 `mapstructure:"full_exemption_threshold"`
	PhaseOutStart          float64 `mapstructure:"phase_out_start"`
	PhaseOutEnd            float64 `mapstructure:"phase_out_end"`
}

type rawHomeownerGrant struct {
	Threshold float64 `mapstructure:"threshold"`
	Amount    float64 `mapstructure:"amount"`
}

type rawCapitalGains struct {
	InclusionRate     float64 `mapstructure:"inclusion_rate"`
	HighInclusionRate float64 `mapstructure:"high_inclusion_rate"`
}

type rawCommission struct {
	Tiers      []rawTier `mapstructure:"tiers"`
	ExcessRate float64   `mapstructure:"excess_rate"`
}

type rawFees struct {
	LegalPurchase  float64 `mapstructure:"legal_purchase"`
	TitleInsurance float64 `mapstructure:"title_insurance"`
	Appraisal      float64 `mapstructure:"appraisal"`
	HomeInspection float64 `mapstructure:"home_inspection"`
	LegalSale      float64 `mapstructure:"legal_sale"`
}

type rawSpeculationTax struct {
	ResidentRate float64 `mapstructure:"resident_rate"`
	ForeignRate  float64 `mapstructure:"foreign_rate"`
}

func (r rawRates) toRates() *Rates {
	return &Rates{
		TransferTax: TransferTax{
			Tiers:      toTiers(r.TransferTax.Tiers),
			ExcessRate: decimal.NewFromFloat(r.TransferTax.ExcessRate),
			FirstTimeBuyer: tax.FirstTimeBuyerSchedule{
				FullExemptionThreshold:    decimal.NewFromFloat(r.TransferTax.FirstTimeBuyer.FullExemptionThreshold),
				PartialExemptionThreshold: decimal.NewFromFloat(r.TransferTax.FirstTimeBuyer.PartialExemptionThreshold),
				PartialExemptionAmount:    decimal.NewFromFloat(r.TransferTax.FirstTimeBuyer.PartialExemptionAmount),
				PhaseOutStart:             decimal.NewFromFloat(r.TransferTax.FirstTimeBuyer.PhaseOutStart),
				PhaseOutEnd:               decimal.NewFromFloat(r.TransferTax.FirstTimeBuyer.PhaseOutEnd),
			},
			NewlyBuilt: tax.NewlyBuiltSchedule{
				FullExemptionThreshold: decimal.NewFromFloat(r.TransferTax.NewlyBuilt.FullExemptionThreshold),
				PhaseOutStart:          decimal.NewFromFloat(r.TransferTax.NewlyBuilt.PhaseOutStart),
				PhaseOutEnd:            decimal.NewFromFloat(r.TransferTax.NewlyBuilt.PhaseOutEnd),
			},
		},
		HomeownerGrant: HomeownerGrant{
			Threshold: decimal.NewFromFloat(r.HomeownerGrant.Threshold),
			Amount:    decimal.NewFromFloat(r.HomeownerGrant.Amount),
		},
		CapitalGains: CapitalGains{
			InclusionRate:     decimal.NewFromFloat(r.CapitalGains.InclusionRate),
			HighInclusionRate: decimal.NewFromFloat(r.CapitalGains.HighInclusionRate),
		},
		Commission: Commission{
			Tiers:      toTiers(r.Commission.Tiers),
			ExcessRate: decimal.NewFromFloat(r.Commission.ExcessRate),
		},
		Fees: Fees{
			LegalPurchase:  decimal.NewFromFloat(r.Fees.LegalPurchase),
			TitleInsurance: decimal.NewFromFloat(r.Fees.TitleInsurance),
			Appraisal:      decimal.NewFromFloat(r.Fees.Appraisal),
			HomeInspection: decimal.NewFromFloat(r.Fees.HomeInspection),
			LegalSale:      decimal.NewFromFloat(r.Fees.LegalSale),
		},
		SpeculationTax: SpeculationTax{
			ResidentRate: decimal.NewFromFloat(r.SpeculationTax.ResidentRate),
			ForeignRate:  decimal.NewFromFloat(r.SpeculationTax.ForeignRate),
		},
	}
}

func toTiers(raw []rawTier) []tax.Tier {
	tiers := make([]tax.Tier, len(raw))
	for i, t := range raw {
		tiers[i] = tax.Tier{
			UpperBound: decimal.NewFromFloat(t.UpperBound),
			Rate:       decimal.NewFromFloat(t.Rate),
		}
	}
	return tiers
}

type rawScenarioFile struct {
	Scenarios []rawScenario
	Logging   LoggingConfig
	Output    OutputConfig
}

type rawScenario struct {
	Name                    string
	Active                  bool
	IncludeInspection       bool
	UseHighInclusionRate    bool
	AcquisitionCostOverride float64
	Purchase                rawPurchase
	Financing               rawFinancing
	Holding                 rawHoldingCosts
	Rental                  *rawRental
	Sale                    rawSale
}

type rawPurchase struct {
	Price          float64
	FirstTimeBuyer bool
	NewlyBuilt     bool
}

type rawFinancing struct {
	DownPayment        float64
	AnnualInterestRate float64
	AmortizationYears  int
}

type rawHoldingCosts struct {
	PropertyTaxAnnual float64
	StrataFeeMonthly  float64
	InsuranceAnnual   float64
	UtilitiesMonthly  float64
}

type rawRental struct {
	MonthlyRent float64
	VacancyRate float64
}

type rawSale struct {
	Price               float64
	HoldingPeriodYears  float64
	PrincipalResidence  bool
	MarginalTaxRate     float64
	CapitalImprovements float64
}

func (r rawScenarioFile) toScenarioFile() *ScenarioFile {
	conf := &ScenarioFile{
		Logging: r.Logging,
		Output:  r.Output,
	}
	for _, s := range r.Scenarios {
		conf.Scenarios = append(conf.Scenarios, s.toScenario())
	}
	return conf
}

func (r rawScenario) toScenario() Scenario {
	scenario := Scenario{
		Name:                    r.Name,
		Active:                  r.Active,
		IncludeInspection:       r.IncludeInspection,
		UseHighInclusionRate:    r.UseHighInclusionRate,
		AcquisitionCostOverride: decimal.NewFromFloat(r.AcquisitionCostOverride),
		Purchase: Purchase{
			Price:          decimal.NewFromFloat(r.Purchase.Price),
			FirstTimeBuyer: r.Purchase.FirstTimeBuyer,
			NewlyBuilt:     r.Purchase.NewlyBuilt,
		},
		Financing: Financing{
			DownPayment:        decimal.NewFromFloat(r.Financing.DownPayment),
			AnnualInterestRate: decimal.NewFromFloat(r.Financing.AnnualInterestRate),
			AmortizationYears:  r.Financing.AmortizationYears,
		},
		Holding: HoldingCosts{
			PropertyTaxAnnual: decimal.NewFromFloat(r.Holding.PropertyTaxAnnual),
			StrataFeeMonthly:  decimal.NewFromFloat(r.Holding.StrataFeeMonthly),
			InsuranceAnnual:   decimal.NewFromFloat(r.Holding.InsuranceAnnual),
			UtilitiesMonthly:  decimal.NewFromFloat(r.Holding.UtilitiesMonthly),
		},
		Sale: Sale{
			Price:               decimal.NewFromFloat(r.Sale.Price),
			HoldingPeriodYears:  decimal.NewFromFloat(r.Sale.HoldingPeriodYears),
			PrincipalResidence:  r.Sale.PrincipalResidence,
			MarginalTaxRate:     decimal.NewFromFloat(r.Sale.MarginalTaxRate),
			CapitalImprovements: decimal.NewFromFloat(r.Sale.CapitalImprovements),
		},
	}
	if r.Rental != nil {
		scenario.Rental = &Rental{
			MonthlyRent: decimal.NewFromFloat(r.Rental.MonthlyRent),
			VacancyRate: decimal.NewFromFloat(r.Rental.VacancyRate),
		}
	}
	return scenario
}
