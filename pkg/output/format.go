// Package output provides utilities for formatting and displaying scenario
// analyses.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/bc-property-forecast/internal/analysis"
	"github.com/iwvelando/bc-property-forecast/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []analysis.ScenarioAnalysis) {
	for i, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)

		fmt.Printf("Acquisition\n")
		fmt.Printf("  Down Payment:            %s\n", format.Currency(result.Buyer.DownPayment))
		fmt.Printf("  Property Transfer Tax:   %s", format.Currency(result.Buyer.PTTAmount))
		if result.Buyer.PTTExemption.IsPositive() {
			fmt.Printf(" (exemption %s)", format.Currency(result.Buyer.PTTExemption))
		}
		fmt.Printf("\n")
		fmt.Printf("  Closing Costs:           %s\n", format.Currency(result.Buyer.ClosingCosts))
		fmt.Printf("  Total Cash to Close:     %s\n", format.Currency(result.Buyer.TotalCashToClose))
		fmt.Printf("  Monthly Mortgage:        %s\n", format.Currency(result.Buyer.MonthlyMortgagePayment))
		fmt.Printf("  Total Monthly Carry:     %s\n", format.Currency(result.Buyer.TotalMonthlyCarry))
		fmt.Printf("  Net Monthly Cash Flow:   %s\n", format.Currency(result.Buyer.NetMonthlyCashFlow))
		if result.Buyer.HomeownerGrantApplied {
			fmt.Printf("  Homeowner grant applied\n")
		}

		fmt.Printf("Disposition\n")
		fmt.Printf("  Gross Proceeds:          %s\n", format.Currency(result.Seller.GrossProceeds))
		fmt.Printf("  Realtor Commission:      %s\n", format.Currency(result.Seller.Commission))
		fmt.Printf("  Legal Fees:              %s\n", format.Currency(result.Seller.LegalFees))
		fmt.Printf("  Capital Gain:            %s\n", format.Currency(result.Seller.CapitalGain))
		fmt.Printf("  Capital Gains Tax:       %s\n", format.Currency(result.Seller.CapitalGainsTax))
		fmt.Printf("  Net Proceeds:            %s\n", format.Currency(result.Seller.NetProceeds))
		if result.Seller.PrincipalResidenceExemption {
			fmt.Printf("  Principal residence exemption applied\n")
		}

		fmt.Printf("Investment (%d months)\n", result.Investment.HoldingPeriodMonths)
		fmt.Printf("  Total Cash Invested:     %s\n", format.Currency(result.Investment.TotalCashInvested))
		fmt.Printf("  Cumulative Cash Flow:    %s\n", format.Currency(result.Investment.CumulativeCashFlow))
		fmt.Printf("  Net Profit:              %s\n", format.Currency(result.Investment.NetProfit))
		fmt.Printf("  ROCI:                    %s\n", format.Percent(result.Investment.ROCIPercent))
		fmt.Printf("  IRR:                     %s\n", format.Percent(result.Investment.IRRPercent))

		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per scenario.
func CsvFormat(results []analysis.ScenarioAnalysis) {
	header := []string{
		"scenario", "down payment", "ptt", "ptt exemption", "closing costs",
		"total cash to close", "monthly mortgage", "total monthly carry",
		"net monthly cash flow", "gross proceeds", "commission", "legal fees",
		"capital gain", "taxable capital gain", "capital gains tax",
		"net proceeds", "total cash invested", "cumulative cash flow",
		"net profit", "roci percent", "irr percent", "holding months",
	}
	fmt.Printf("%s\n", quoteJoin(header))

	for _, result := range results {
		row := []string{
			result.Name,
			result.Buyer.DownPayment.StringFixed(2),
			result.Buyer.PTTAmount.StringFixed(2),
			result.Buyer.PTTExemption.StringFixed(2),
			result.Buyer.ClosingCosts.StringFixed(2),
			result.Buyer.TotalCashToClose.StringFixed(2),
			result.Buyer.MonthlyMortgagePayment.StringFixed(2),
			result.Buyer.TotalMonthlyCarry.StringFixed(2),
			result.Buyer.NetMonthlyCashFlow.StringFixed(2),
			result.Seller.GrossProceeds.StringFixed(2),
			result.Seller.Commission.StringFixed(2),
			result.Seller.LegalFees.StringFixed(2),
			result.Seller.CapitalGain.StringFixed(2),
			result.Seller.TaxableCapitalGain.StringFixed(2),
			result.Seller.CapitalGainsTax.StringFixed(2),
			result.Seller.NetProceeds.StringFixed(2),
			result.Investment.TotalCashInvested.StringFixed(2),
			result.Investment.CumulativeCashFlow.StringFixed(2),
			result.Investment.NetProfit.StringFixed(2),
			result.Investment.ROCIPercent.StringFixed(2),
			result.Investment.IRRPercent.StringFixed(2),
			fmt.Sprintf("%d", result.Investment.HoldingPeriodMonths),
		}
		fmt.Printf("%s\n", quoteJoin(row))
	}
}

func quoteJoin(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + field + `"`
	}
	return strings.Join(quoted, ",")
}
