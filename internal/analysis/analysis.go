// Package analysis orchestrates the buyer, seller, and investment engines
// across all configured scenarios.
package analysis

import (
	"fmt"

	"github.com/iwvelando/bc-property-forecast/internal/buyer"
	"github.com/iwvelando/bc-property-forecast/internal/config"
	"github.com/iwvelando/bc-property-forecast/internal/investment"
	"github.com/iwvelando/bc-property-forecast/internal/seller"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ScenarioAnalysis holds all computed results for one scenario.
type ScenarioAnalysis struct {
	Name       string
	Buyer      buyer.Result
	Seller     seller.Result
	Investment investment.Result
}

// GetAnalysis processes every active scenario: buyer engine first, then the
// seller engine fed with the buyer's total cash to close (unless the
// scenario overrides the acquisition cost), then the investment analyzer
// over both results.
func GetAnalysis(logger *zap.Logger, rates *config.Rates, conf *config.ScenarioFile) ([]ScenarioAnalysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	buyerCalc := buyer.New(rates, logger)
	sellerCalc := seller.New(rates, logger)
	analyzer := investment.NewAnalyzer(logger)

	var results []ScenarioAnalysis
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "analysis.GetAnalysis"),
			)
			continue
		}

		buyerResult, err := buyerCalc.ComputeAll(scenario.Purchase, scenario.Financing,
			scenario.Holding, scenario.Rental, scenario.IncludeInspection)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		acquisitionCosts := buyerResult.TotalCashToClose
		if scenario.AcquisitionCostOverride.GreaterThan(decimal.Zero) {
			acquisitionCosts = scenario.AcquisitionCostOverride
		}

		var inclusionRate *decimal.Decimal
		if scenario.UseHighInclusionRate {
			rate := rates.CapitalGains.HighInclusionRate
			inclusionRate = &rate
		}

		sellerResult, err := sellerCalc.ComputeAll(scenario.Sale, acquisitionCosts, inclusionRate)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		investmentResult := analyzer.ComputeAll(buyerResult, sellerResult, scenario.Sale.HoldingPeriodYears)

		results = append(results, ScenarioAnalysis{
			Name:       scenario.Name,
			Buyer:      buyerResult,
			Seller:     sellerResult,
			Investment: investmentResult,
		})
	}

	return results, nil
}
