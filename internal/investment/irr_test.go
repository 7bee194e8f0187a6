package investment

import (
	"errors"
	"math"
	"testing"
)

func TestNpv(t *testing.T) {
	flows := []float64{-1000, 500, 600}

	// -1000 + 500/1.1 + 600/1.21
	expected := -1000 + 500/1.1 + 600/1.21
	result := npv(0.1, flows)
	if math.Abs(result-expected) > 1e-9 {
		t.Errorf("npv(0.1) = %f, expected %f", result, expected)
	}

	// At a zero rate the NPV is the plain sum.
	if result := npv(0, flows); math.Abs(result-100) > 1e-9 {
		t.Errorf("npv(0) = %f, expected 100", result)
	}
}

func TestSolveRateSinglePayoff(t *testing.T) {
	// -1000 now, 1115.67 in month eleven solves to a 1% monthly rate.
	flows := make([]float64, 12)
	flows[0] = -1000
	flows[11] = 1115.67

	rate, err := solveRate(flows)
	if err != nil {
		t.Fatalf("solveRate() error = %v", err)
	}
	if math.Abs(rate-0.01) > 1e-4 {
		t.Errorf("solveRate() = %f, expected about 0.01", rate)
	}
	if value := npv(rate, flows); math.Abs(value) > 1e-3 {
		t.Errorf("npv at the solved rate = %f, expected about 0", value)
	}
}

func TestSolveRateLevelAnnuity(t *testing.T) {
	// -1000 now and ten repayments of 110 lands between 1% and 2% monthly.
	flows := make([]float64, 11)
	flows[0] = -1000
	for i := 1; i < len(flows); i++ {
		flows[i] = 110
	}

	rate, err := solveRate(flows)
	if err != nil {
		t.Fatalf("solveRate() error = %v", err)
	}
	if rate < 0.01 || rate > 0.02 {
		t.Errorf("solveRate() = %f, expected between 0.01 and 0.02", rate)
	}
}

func TestSolveRateNoSignChange(t *testing.T) {
	for _, flows := range [][]float64{
		{100, 200, 300},
		{-100, -200, -300},
	} {
		if _, err := solveRate(flows); !errors.Is(err, errNoRoot) {
			t.Errorf("solveRate(%v) error = %v, expected errNoRoot", flows, err)
		}
	}
}

func TestBracketFindsSignChange(t *testing.T) {
	flows := []float64{-1000, 1150}

	lo, hi, err := bracket(flows)
	if err != nil {
		t.Fatalf("bracket() error = %v", err)
	}
	if !(lo < 0.15 && 0.15 < hi) {
		t.Errorf("bracket() = [%f, %f], expected an interval containing the 0.15 root", lo, hi)
	}
}
