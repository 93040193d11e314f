// Package annuity implements the annuity family: ordinary annuities,
// annuities due, growing annuities and perpetuities. Rates are per period
// and periods count payments.
package annuity

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// PresentValue of an ordinary annuity paying payment for periods at rate.
//
//	PV = payment × (1 − (1+rate)^−periods) / rate
func PresentValue(payment, rate, periods float64) (float64, error) {
	factor, err := PresentValueFactor(rate, periods)
	if err != nil {
		return 0, err
	}

	return payment * factor, nil
}

// PresentValueFactor is (1 − (1+rate)^−periods) / rate.
func PresentValueFactor(rate, periods float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return (1 - math.Pow(1+rate, -periods)) / rate, nil
}

// FutureValue of an ordinary annuity at the time of the last payment.
//
//	FV = payment × ((1+rate)^periods − 1) / rate
func FutureValue(payment, rate, periods float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return payment * (math.Pow(1+rate, periods) - 1) / rate, nil
}

// FutureValueContinuousCompounding values a series of cash flows under
// continuous compounding.
//
//	FV = cashFlow × (e^(rate×time) − 1) / (e^rate − 1)
func FutureValueContinuousCompounding(cashFlow, rate, time float64) (float64, error) {
	if err := guard.NonZero("e^rate-1", math.Exp(rate)-1); err != nil {
		return 0, err
	}

	return cashFlow * (math.Exp(rate*time) - 1) / (math.Exp(rate) - 1), nil
}

// PaymentFromPresentValue is the level payment that amortizes presentValue.
//
//	P = PV × rate / (1 − (1+rate)^−periods)
func PaymentFromPresentValue(presentValue, rate, periods float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	den := 1 - math.Pow(1+rate, -periods)
	if err := guard.NonZero("1-(1+rate)^-periods", den); err != nil {
		return 0, err
	}

	return presentValue * rate / den, nil
}

// PaymentFromFutureValue is the level payment that accumulates to futureValue.
//
//	P = FV × rate / ((1+rate)^periods − 1)
func PaymentFromFutureValue(futureValue, rate, periods float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	den := math.Pow(1+rate, periods) - 1
	if err := guard.NonZero("(1+rate)^periods-1", den); err != nil {
		return 0, err
	}

	return futureValue * rate / den, nil
}
