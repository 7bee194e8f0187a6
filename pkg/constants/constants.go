// Package constants provides shared constants for bc-property-forecast.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of monthly payment periods in a year
	MonthsPerYear = 12

	// BiweeklyPeriodsPerYear is the number of biweekly payment periods in a year
	BiweeklyPeriodsPerYear = 26

	// WeeklyPeriodsPerYear is the number of weekly payment periods in a year
	WeeklyPeriodsPerYear = 52

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100

	// CurrencyDecimalPlaces is the number of fractional digits carried by
	// currency amounts
	CurrencyDecimalPlaces = 2

	// MaxAmortizationYears is the longest supported amortization period
	MaxAmortizationYears = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultRatesFile is the default rate-table file name
	DefaultRatesFile = "defaults.toml"

	// DefaultScenariosFile is the default scenario configuration file name
	DefaultScenariosFile = "scenarios.yaml"
)
