// Package investment aggregates buyer and seller results over a holding
// period into cash-on-cash and internal rate of return metrics.
package investment

import (
	"fmt"
	"math"

	"github.com/iwvelando/bc-property-forecast/internal/buyer"
	"github.com/iwvelando/bc-property-forecast/internal/seller"
	"github.com/iwvelando/bc-property-forecast/pkg/constants"
	"github.com/iwvelando/bc-property-forecast/pkg/moneyutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var twelve = decimal.NewFromInt(constants.MonthsPerYear)

// Result is the immutable snapshot of the aggregate investment metrics.
type Result struct {
	TotalCashInvested   decimal.Decimal
	TotalReturn         decimal.Decimal
	NetProfit           decimal.Decimal
	ROCIPercent         decimal.Decimal
	IRRPercent          decimal.Decimal
	HoldingPeriodMonths int
	CumulativeCashFlow  decimal.Decimal
}

// Analyzer computes investment return metrics.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer. A nil logger falls back to a nop logger.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// TotalCashInvested returns the capital committed over the hold: negative
// cumulative cash flow is additional capital the investor had to fund,
// while positive cash flow does not reduce the basis.
func TotalCashInvested(initialCashToClose, cumulativeCashFlow decimal.Decimal) decimal.Decimal {
	if cumulativeCashFlow.LessThan(decimal.Zero) {
		return initialCashToClose.Add(cumulativeCashFlow.Abs())
	}
	return initialCashToClose
}

// ROCI returns the return on cash invested as a percentage rounded to two
// decimals. A non-positive investment base yields zero rather than an
// error.
func ROCI(totalReturn, totalCashInvested decimal.Decimal) decimal.Decimal {
	if totalCashInvested.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return moneyutil.RoundCents(moneyutil.ToPercent(totalReturn.Div(totalCashInvested)))
}

// IRR returns the annualized internal rate of return as a percentage. The
// monthly series has floor(holdingPeriodYears*12) entries: the initial
// outflow, the repeated monthly cash flow, and a final month that also
// receives the net sale proceeds. Non-convergence, a series with no root,
// or a series too short to solve all yield zero by policy.
func (a *Analyzer) IRR(initialInvestment, monthlyCashFlow, netProceeds, holdingPeriodYears decimal.Decimal) decimal.Decimal {
	months := int(holdingPeriodYears.Mul(twelve).IntPart())
	if months < 2 {
		a.logger.Debug(fmt.Sprintf("holding period of %d months is too short for an IRR series", months),
			zap.String("op", "investment.IRR"),
		)
		return decimal.Zero
	}

	flows := make([]float64, months)
	flows[0] = initialInvestment.Neg().InexactFloat64()
	monthly := monthlyCashFlow.InexactFloat64()
	for i := 1; i < months-1; i++ {
		flows[i] = monthly
	}
	flows[months-1] = monthly + netProceeds.InexactFloat64()

	monthlyRate, err := solveRate(flows)
	if err != nil {
		a.logger.Debug("IRR solve failed, reporting zero",
			zap.String("op", "investment.IRR"),
			zap.Error(err),
		)
		return decimal.Zero
	}

	annualRate := math.Pow(1+monthlyRate, constants.MonthsPerYear) - 1
	if math.IsNaN(annualRate) || math.IsInf(annualRate, 0) {
		return decimal.Zero
	}

	return moneyutil.RoundCents(decimal.NewFromFloat(annualRate * constants.PercentageMultiplier))
}

// ComputeAll aggregates the buyer and seller results over the holding
// period. Positive cumulative cash flow is added to the total return but
// never subtracted from the invested basis; the asymmetry is intentional
// and matches the underlying model.
func (a *Analyzer) ComputeAll(buyerResult buyer.Result, sellerResult seller.Result, holdingPeriodYears decimal.Decimal) Result {
	months := int(holdingPeriodYears.Mul(twelve).IntPart())
	cumulativeCashFlow := buyerResult.NetMonthlyCashFlow.Mul(decimal.NewFromInt(int64(months)))

	totalCashInvested := TotalCashInvested(buyerResult.TotalCashToClose, cumulativeCashFlow)

	var totalReturn decimal.Decimal
	if cumulativeCashFlow.GreaterThanOrEqual(decimal.Zero) {
		totalReturn = sellerResult.NetProceeds.Sub(buyerResult.TotalCashToClose).Add(cumulativeCashFlow)
	} else {
		totalReturn = sellerResult.NetProceeds.Sub(totalCashInvested)
	}

	roci := ROCI(totalReturn, totalCashInvested)
	irr := a.IRR(buyerResult.TotalCashToClose, buyerResult.NetMonthlyCashFlow, sellerResult.NetProceeds, holdingPeriodYears)

	a.logger.Debug(fmt.Sprintf("total return %s on %s invested over %d months",
		totalReturn, totalCashInvested, months),
		zap.String("op", "investment.ComputeAll"),
	)

	return Result{
		TotalCashInvested:   totalCashInvested,
		TotalReturn:         totalReturn,
		NetProfit:           totalReturn,
		ROCIPercent:         roci,
		IRRPercent:          irr,
		HoldingPeriodMonths: months,
		CumulativeCashFlow:  cumulativeCashFlow,
	}
}
