// Package portfolio implements return measures computed over sequences:
// weighted averages over (weight, value) pairs and the compounded return
// reductions.
package portfolio

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// WeightedValue pairs a weight with the value it scales. Pairing is what
// matters; the order of pairs does not change any result built on them.
type WeightedValue struct {
	Weight float64
	Value  float64
}

// WeightedAverage is Σ weightᵢ × valueᵢ. An empty list sums to zero.
func WeightedAverage(pairs []WeightedValue) float64 {
	var sum float64

	for _, p := range pairs {
		sum += p.Weight * p.Value
	}

	return sum
}

// ExpectedReturn is the probability-weighted return of a set of outcomes,
// the same reduction as WeightedAverage.
func ExpectedReturn(outcomes []WeightedValue) float64 {
	return WeightedAverage(outcomes)
}

// WeightedMean normalizes by the sum of the weights.
//
//	Σ wᵢvᵢ / Σ wᵢ
func WeightedMean(values, weights []float64) (float64, error) {
	if err := guard.EqualLen("values", "weights", len(values), len(weights)); err != nil {
		return 0, err
	}

	var sum, weightSum float64

	for i := range values {
		sum += weights[i] * values[i]
		weightSum += weights[i]
	}

	if err := guard.NonZero("sum of weights", weightSum); err != nil {
		return 0, err
	}

	return sum / weightSum, nil
}

// GeometricMeanReturn compounds the periodic returns and annualizes over
// their count.
//
//	∏(1+rᵢ)^(1/n) − 1
func GeometricMeanReturn(returns []float64) (float64, error) {
	n := float64(len(returns))
	if err := guard.NonZero("number of returns", n); err != nil {
		return 0, err
	}

	product := 1.0
	for _, r := range returns {
		product *= 1 + r
	}

	return math.Pow(product, 1/n) - 1, nil
}

// HoldingPeriodReturn is the total compounded return over the supplied
// periods. An empty list compounds to zero return.
//
//	∏(1+rᵢ) − 1
func HoldingPeriodReturn(periodicReturns []float64) float64 {
	product := 1.0
	for _, r := range periodicReturns {
		product *= 1 + r
	}

	return product - 1
}

// RealRateOfReturn strips inflation out of a nominal return.
//
//	(1+nominal)/(1+inflation) − 1
func RealRateOfReturn(nominalRate, inflationRate float64) (float64, error) {
	if err := guard.NonZero("1+inflationRate", 1+inflationRate); err != nil {
		return 0, err
	}

	return (1+nominalRate)/(1+inflationRate) - 1, nil
}
