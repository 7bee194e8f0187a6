package investment

import (
	"errors"
	"math"
)

// The rate solver works in float64: the NPV root-find is an approximation
// by nature and its output is rounded to basis points before display.
const (
	maxNewtonIterations    = 50
	maxBisectionIterations = 200
	npvTolerance           = 1e-7
	rateLowerBound         = -0.999999
	rateUpperBound         = 10.0
)

var errNoRoot = errors.New("cash-flow series has no internal rate of return")

// npv discounts the cash-flow series at the given periodic rate. The first
// entry is at period zero.
func npv(rate float64, flows []float64) float64 {
	value := 0.0
	discount := 1.0
	for _, flow := range flows {
		value += flow / discount
		discount *= 1 + rate
	}
	return value
}

// npvDerivative is the analytic derivative of npv with respect to the rate.
func npvDerivative(rate float64, flows []float64) float64 {
	value := 0.0
	for t := 1; t < len(flows); t++ {
		value -= float64(t) * flows[t] / math.Pow(1+rate, float64(t)+1)
	}
	return value
}

// solveRate finds the periodic rate at which the series' net present value
// is zero. Newton's method runs first; if it diverges or leaves the valid
// rate domain, a bracketing bisection takes over.
func solveRate(flows []float64) (float64, error) {
	if rate, ok := newton(flows); ok {
		return rate, nil
	}
	return bisect(flows)
}

func newton(flows []float64) (float64, bool) {
	rate := 0.1
	for i := 0; i < maxNewtonIterations; i++ {
		value := npv(rate, flows)
		if math.Abs(value) < npvTolerance {
			return rate, true
		}
		derivative := npvDerivative(rate, flows)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, false
		}
		next := rate - value/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= rateLowerBound || next > rateUpperBound {
			return 0, false
		}
		rate = next
	}
	return 0, false
}

func bisect(flows []float64) (float64, error) {
	lo, hi, err := bracket(flows)
	if err != nil {
		return 0, err
	}

	loValue := npv(lo, flows)
	for i := 0; i < maxBisectionIterations; i++ {
		mid := (lo + hi) / 2
		midValue := npv(mid, flows)
		if math.Abs(midValue) < npvTolerance || (hi-lo)/2 < npvTolerance {
			return mid, nil
		}
		if (loValue < 0) == (midValue < 0) {
			lo, loValue = mid, midValue
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// bracket scans for a sign change of the NPV over a coarse rate grid. A
// series whose flows all share one sign never changes sign and has no root.
func bracket(flows []float64) (float64, float64, error) {
	grid := []float64{rateLowerBound, -0.9, -0.5, -0.2, -0.1, -0.05, -0.01, 0,
		0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, rateUpperBound}

	previousRate := grid[0]
	previousValue := npv(previousRate, flows)
	for _, rate := range grid[1:] {
		value := npv(rate, flows)
		if !math.IsNaN(value) && !math.IsNaN(previousValue) && (previousValue < 0) != (value < 0) {
			return previousRate, rate, nil
		}
		previousRate, previousValue = rate, value
	}
	return 0, 0, errNoRoot
}
