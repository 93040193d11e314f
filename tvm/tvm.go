// Package tvm implements the time-value-of-money formulas: present and
// future value, their factors, net present value and the number of periods
// between two values. All results are full double precision, no rounding.
package tvm

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// PresentValue discounts futureValue back over periods at rate per period.
//
//	PV = FV / (1+rate)^periods
func PresentValue(futureValue, rate, periods float64) (float64, error) {
	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	return futureValue / math.Pow(1+rate, periods), nil
}

// PresentValueFactor is the discount factor 1 / (1+rate)^periods.
func PresentValueFactor(rate, periods float64) (float64, error) {
	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	return 1 / math.Pow(1+rate, periods), nil
}

// FutureValue compounds presentValue forward over periods at rate per period.
//
//	FV = PV × (1+rate)^periods
func FutureValue(presentValue, rate, periods float64) float64 {
	return presentValue * math.Pow(1+rate, periods)
}

// FutureValueFactor is the growth factor (1+rate)^periods.
func FutureValueFactor(rate, periods float64) float64 {
	return math.Pow(1+rate, periods)
}

// FutureValueContinuousCompounding compounds presentValue continuously.
//
//	FV = PV × e^(rate×time)
func FutureValueContinuousCompounding(presentValue, rate, time float64) float64 {
	return presentValue * math.Exp(rate*time)
}

// NetPresentValue discounts each cash flow by its position in the supplied
// order (the first flow lands one period out) and subtracts the initial
// investment. Permuting cashFlows changes the result.
func NetPresentValue(initialInvestment float64, cashFlows []float64, discountRate float64) (float64, error) {
	if err := guard.NonZero("1+discountRate", 1+discountRate); err != nil {
		return 0, err
	}

	npv := -initialInvestment

	for i, flow := range cashFlows {
		npv += flow / math.Pow(1+discountRate, float64(i+1))
	}

	return npv, nil
}

// NumberOfPeriods is how many periods it takes presentValue to grow to
// futureValue at rate per period.
//
//	n = ln(FV/PV) / ln(1+rate)
func NumberOfPeriods(futureValue, presentValue, rate float64) (float64, error) {
	if err := guard.NonZero("presentValue", presentValue); err != nil {
		return 0, err
	}

	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return math.Log(futureValue/presentValue) / math.Log(1+rate), nil
}
