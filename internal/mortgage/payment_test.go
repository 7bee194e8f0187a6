package mortgage

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         string
		annualRate        string
		amortizationYears int
		frequency         Frequency
		expectedRange     []string // [min, max] expected range
	}{
		{
			name:              "standard 25-year mortgage",
			principal:         "640000",
			annualRate:        "5.5",
			amortizationYears: 25,
			frequency:         Monthly,
			expectedRange:     []string{"3900", "3960"}, // around $3930
		},
		{
			name:              "30-year mortgage",
			principal:         "240000",
			annualRate:        "6.0",
			amortizationYears: 30,
			frequency:         Monthly,
			expectedRange:     []string{"1400", "1500"}, // around $1439
		},
		{
			name:              "biweekly schedule",
			principal:         "640000",
			annualRate:        "5.5",
			amortizationYears: 25,
			frequency:         Biweekly,
			expectedRange:     []string{"1790", "1830"}, // around $1813
		},
		{
			name:              "high interest",
			principal:         "10000",
			annualRate:        "18.0",
			amortizationYears: 3,
			frequency:         Monthly,
			expectedRange:     []string{"360", "380"}, // around $362
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Payment(decimal.RequireFromString(tt.principal),
				decimal.RequireFromString(tt.annualRate), tt.amortizationYears, tt.frequency)
			if err != nil {
				t.Fatalf("Payment() error = %v", err)
			}

			min := decimal.RequireFromString(tt.expectedRange[0])
			max := decimal.RequireFromString(tt.expectedRange[1])
			if result.LessThan(min) || result.GreaterThan(max) {
				t.Errorf("Payment() = %s, expected range [%s, %s]", result, min, max)
			}
		})
	}
}

func TestPaymentZeroPrincipal(t *testing.T) {
	for _, principal := range []string{"0", "-1000"} {
		result, err := Payment(decimal.RequireFromString(principal),
			decimal.RequireFromString("5.5"), 25, Monthly)
		if err != nil {
			t.Fatalf("Payment() error = %v", err)
		}
		if !result.IsZero() {
			t.Errorf("Payment with principal %s = %s, expected 0", principal, result)
		}
	}
}

func TestPaymentZeroRate(t *testing.T) {
	tests := []struct {
		name              string
		principal         string
		amortizationYears int
		frequency         Frequency
		expected          string
	}{
		{"monthly linear", "12000", 5, Monthly, "200"},
		{"biweekly linear", "12000", 5, Biweekly, "92.31"},
		{"weekly linear", "13000", 5, Weekly, "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Payment(decimal.RequireFromString(tt.principal),
				decimal.Zero, tt.amortizationYears, tt.frequency)
			if err != nil {
				t.Fatalf("Payment() error = %v", err)
			}
			expected := decimal.RequireFromString(tt.expected)
			if !result.Equal(expected) {
				t.Errorf("Payment() = %s, expected exact linear division %s", result, expected)
			}
		})
	}
}

func TestPaymentDecreasesWithLongerTerm(t *testing.T) {
	principal := decimal.NewFromInt(500000)
	rate := decimal.RequireFromString("4.5")

	previous, err := Payment(principal, rate, 5, Monthly)
	if err != nil {
		t.Fatalf("Payment() error = %v", err)
	}
	for _, years := range []int{10, 15, 20, 25, 30} {
		payment, err := Payment(principal, rate, years, Monthly)
		if err != nil {
			t.Fatalf("Payment() error = %v", err)
		}
		if !payment.LessThan(previous) {
			t.Errorf("payment %s over %d years should be below %s over the shorter term", payment, years, previous)
		}
		previous = payment
	}
}

func TestPaymentOrderingAcrossFrequencies(t *testing.T) {
	principal := decimal.NewFromInt(640000)
	rate := decimal.RequireFromString("5.5")

	monthly, err := Payment(principal, rate, 25, Monthly)
	if err != nil {
		t.Fatalf("Payment() error = %v", err)
	}
	biweekly, err := Payment(principal, rate, 25, Biweekly)
	if err != nil {
		t.Fatalf("Payment() error = %v", err)
	}
	weekly, err := Payment(principal, rate, 25, Weekly)
	if err != nil {
		t.Fatalf("Payment() error = %v", err)
	}

	if !monthly.GreaterThan(biweekly) || !biweekly.GreaterThan(weekly) {
		t.Errorf("per-period payments should order monthly > biweekly > weekly, got %s, %s, %s",
			monthly, biweekly, weekly)
	}
}

func TestPaymentInvalidInputs(t *testing.T) {
	if _, err := Payment(decimal.NewFromInt(100000), decimal.NewFromInt(5), 25, Frequency("quarterly")); err == nil {
		t.Error("expected error for unknown frequency")
	}
	if _, err := Payment(decimal.NewFromInt(100000), decimal.NewFromInt(5), 0, Monthly); err == nil {
		t.Error("expected error for zero amortization years")
	}
}
