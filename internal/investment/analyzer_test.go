package investment

import (
	"testing"

	"github.com/iwvelando/bc-property-forecast/internal/buyer"
	"github.com/iwvelando/bc-property-forecast/internal/seller"
	"github.com/shopspring/decimal"
)

func TestTotalCashInvested(t *testing.T) {
	tests := []struct {
		name               string
		initialCashToClose string
		cumulativeCashFlow string
		expected           string
	}{
		{"negative cash flow adds to the basis", "100000", "-12000", "112000"},
		{"positive cash flow never reduces the basis", "100000", "12000", "100000"},
		{"zero cash flow leaves the basis alone", "100000", "0", "100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TotalCashInvested(decimal.RequireFromString(tt.initialCashToClose),
				decimal.RequireFromString(tt.cumulativeCashFlow))
			expected := decimal.RequireFromString(tt.expected)
			if !result.Equal(expected) {
				t.Errorf("TotalCashInvested() = %s, expected %s", result, expected)
			}
		})
	}
}

func TestROCI(t *testing.T) {
	tests := []struct {
		name              string
		totalReturn       string
		totalCashInvested string
		expected          string
	}{
		{"quarter return", "50000", "200000", "25"},
		{"negative return", "-10000", "200000", "-5"},
		{"zero return", "0", "200000", "0"},
		{"zero invested yields zero", "50000", "0", "0"},
		{"negative invested yields zero", "50000", "-1", "0"},
		{"rounds to two decimals", "38000", "112000", "33.93"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ROCI(decimal.RequireFromString(tt.totalReturn),
				decimal.RequireFromString(tt.totalCashInvested))
			expected := decimal.RequireFromString(tt.expected)
			if !result.Equal(expected) {
				t.Errorf("ROCI(%s, %s) = %s, expected %s",
					tt.totalReturn, tt.totalCashInvested, result, expected)
			}
		})
	}
}

func TestIRRKnownCase(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// One initial outflow of 1000 and a single final inflow of 1115.67
	// eleven months later solve to a 1% monthly rate, which annualizes to
	// about 12.68%.
	result := analyzer.IRR(decimal.NewFromInt(1000), decimal.Zero,
		decimal.RequireFromString("1115.67"), decimal.NewFromInt(1))

	min := decimal.RequireFromString("12.6")
	max := decimal.RequireFromString("12.8")
	if result.LessThan(min) || result.GreaterThan(max) {
		t.Errorf("IRR() = %s, expected range [%s, %s]", result, min, max)
	}
}

func TestIRRProfitableHold(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	result := analyzer.IRR(decimal.NewFromInt(177050), decimal.NewFromInt(-1150),
		decimal.RequireFromString("793555.42"), decimal.NewFromInt(5))
	if !result.GreaterThan(decimal.Zero) {
		t.Errorf("IRR() = %s, expected a positive rate for a profitable hold", result)
	}
}

func TestIRRNoRootReportsZero(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// All flows share a sign once the initial investment is zero, so no
	// discount rate can zero the series.
	result := analyzer.IRR(decimal.Zero, decimal.NewFromInt(500),
		decimal.NewFromInt(10000), decimal.NewFromInt(2))
	if !result.IsZero() {
		t.Errorf("IRR() = %s, expected 0 when the series has no root", result)
	}
}

func TestIRRShortSeriesReportsZero(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	result := analyzer.IRR(decimal.NewFromInt(100000), decimal.NewFromInt(500),
		decimal.NewFromInt(150000), decimal.RequireFromString("0.08"))
	if !result.IsZero() {
		t.Errorf("IRR() = %s, expected 0 for a series under two months", result)
	}
}

func TestComputeAllPositiveCashFlow(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	buyerResult := buyer.Result{
		TotalCashToClose:   decimal.NewFromInt(100000),
		NetMonthlyCashFlow: decimal.NewFromInt(500),
	}
	sellerResult := seller.Result{NetProceeds: decimal.NewFromInt(150000)}

	result := analyzer.ComputeAll(buyerResult, sellerResult, decimal.NewFromInt(2))

	if result.HoldingPeriodMonths != 24 {
		t.Errorf("HoldingPeriodMonths = %d, expected 24", result.HoldingPeriodMonths)
	}
	if !result.CumulativeCashFlow.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("CumulativeCashFlow = %s, expected 12000", result.CumulativeCashFlow)
	}
	if !result.TotalCashInvested.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("TotalCashInvested = %s, expected 100000", result.TotalCashInvested)
	}
	if !result.TotalReturn.Equal(decimal.NewFromInt(62000)) {
		t.Errorf("TotalReturn = %s, expected 62000", result.TotalReturn)
	}
	if !result.ROCIPercent.Equal(decimal.NewFromInt(62)) {
		t.Errorf("ROCIPercent = %s, expected 62", result.ROCIPercent)
	}
}

// Positive cumulative cash flow raises the return without lowering the
// invested basis, while negative cash flow raises the basis without a
// matching credit to the return. The two cases are deliberately asymmetric.
func TestComputeAllNegativeCashFlow(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	buyerResult := buyer.Result{
		TotalCashToClose:   decimal.NewFromInt(100000),
		NetMonthlyCashFlow: decimal.NewFromInt(-500),
	}
	sellerResult := seller.Result{NetProceeds: decimal.NewFromInt(150000)}

	result := analyzer.ComputeAll(buyerResult, sellerResult, decimal.NewFromInt(2))

	if !result.CumulativeCashFlow.Equal(decimal.NewFromInt(-12000)) {
		t.Errorf("CumulativeCashFlow = %s, expected -12000", result.CumulativeCashFlow)
	}
	if !result.TotalCashInvested.Equal(decimal.NewFromInt(112000)) {
		t.Errorf("TotalCashInvested = %s, expected 112000", result.TotalCashInvested)
	}
	if !result.TotalReturn.Equal(decimal.NewFromInt(38000)) {
		t.Errorf("TotalReturn = %s, expected 38000", result.TotalReturn)
	}
	if !result.ROCIPercent.Equal(decimal.RequireFromString("33.93")) {
		t.Errorf("ROCIPercent = %s, expected 33.93", result.ROCIPercent)
	}
	if !result.NetProfit.Equal(result.TotalReturn) {
		t.Errorf("NetProfit = %s, expected the total return %s", result.NetProfit, result.TotalReturn)
	}
}

func TestComputeAllFractionalYearsFloorToMonths(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	buyerResult := buyer.Result{
		TotalCashToClose:   decimal.NewFromInt(100000),
		NetMonthlyCashFlow: decimal.NewFromInt(100),
	}
	sellerResult := seller.Result{NetProceeds: decimal.NewFromInt(120000)}

	result := analyzer.ComputeAll(buyerResult, sellerResult, decimal.RequireFromString("2.55"))
	if result.HoldingPeriodMonths != 30 {
		t.Errorf("HoldingPeriodMonths = %d, expected floor(2.55 * 12) = 30", result.HoldingPeriodMonths)
	}
}
