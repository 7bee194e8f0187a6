package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"small amount", "570", "$570.00"},
		{"thousands separator", "14000", "$14,000.00"},
		{"cents preserved", "175444.58", "$175,444.58"},
		{"negative amount", "-1150", "-$1,150.00"},
		{"zero", "0", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(decimal.RequireFromString(tt.amount))
			if result != tt.expected {
				t.Errorf("Currency(%s) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		expected string
	}{
		{"two decimals", "5.5", "5.50%"},
		{"already two decimals", "33.93", "33.93%"},
		{"zero", "0", "0.00%"},
		{"negative", "-5", "-5.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(decimal.RequireFromString(tt.rate))
			if result != tt.expected {
				t.Errorf("Percent(%s) = %s, expected %s", tt.rate, result, tt.expected)
			}
		})
	}
}
