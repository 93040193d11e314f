package annuity

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// An annuity due pays at the start of each period, so every value is the
// ordinary result shifted by one compounding.

// DuePresentValue = ordinary PV × (1+rate).
func DuePresentValue(payment, rate, periods float64) (float64, error) {
	pv, err := PresentValue(payment, rate, periods)
	if err != nil {
		return 0, err
	}

	return pv * (1 + rate), nil
}

// DueFutureValue = ordinary FV × (1+rate).
func DueFutureValue(payment, rate, periods float64) (float64, error) {
	fv, err := FutureValue(payment, rate, periods)
	if err != nil {
		return 0, err
	}

	return fv * (1 + rate), nil
}

// DuePaymentFromPresentValue is the start-of-period payment that amortizes
// presentValue.
func DuePaymentFromPresentValue(presentValue, rate, periods float64) (float64, error) {
	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	payment, err := PaymentFromPresentValue(presentValue, rate, periods)
	if err != nil {
		return 0, err
	}

	return payment / (1 + rate), nil
}

// DuePaymentFromFutureValue is the start-of-period payment that accumulates
// to futureValue.
func DuePaymentFromFutureValue(futureValue, rate, periods float64) (float64, error) {
	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	payment, err := PaymentFromFutureValue(futureValue, rate, periods)
	if err != nil {
		return 0, err
	}

	return payment / (1 + rate), nil
}

// GrowingPresentValue of an annuity whose first payment grows by growthRate
// each period.
//
//	PV = P/(rate−growth) × (1 − ((1+growth)/(1+rate))^periods)
func GrowingPresentValue(firstPayment, rate, growthRate, periods float64) (float64, error) {
	if err := guard.NonZero("rate-growthRate", rate-growthRate); err != nil {
		return 0, err
	}

	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	return firstPayment / (rate - growthRate) * (1 - math.Pow((1+growthRate)/(1+rate), periods)), nil
}

// GrowingFutureValue of a growing annuity at the time of the last payment.
//
//	FV = P × ((1+rate)^periods − (1+growth)^periods) / (rate−growth)
func GrowingFutureValue(firstPayment, rate, growthRate, periods float64) (float64, error) {
	if err := guard.NonZero("rate-growthRate", rate-growthRate); err != nil {
		return 0, err
	}

	return firstPayment * (math.Pow(1+rate, periods) - math.Pow(1+growthRate, periods)) / (rate - growthRate), nil
}

// GrowingPaymentFromPresentValue is the first payment of a growing annuity
// worth presentValue today.
func GrowingPaymentFromPresentValue(presentValue, rate, growthRate, periods float64) (float64, error) {
	if err := guard.NonZero("rate-growthRate", rate-growthRate); err != nil {
		return 0, err
	}

	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	den := 1 - math.Pow((1+growthRate)/(1+rate), periods)
	if err := guard.NonZero("1-((1+growthRate)/(1+rate))^periods", den); err != nil {
		return 0, err
	}

	return presentValue * (rate - growthRate) / den, nil
}

// GrowingPaymentFromFutureValue is the first payment of a growing annuity
// that accumulates to futureValue.
func GrowingPaymentFromFutureValue(futureValue, rate, growthRate, periods float64) (float64, error) {
	if err := guard.NonZero("rate-growthRate", rate-growthRate); err != nil {
		return 0, err
	}

	den := math.Pow(1+rate, periods) - math.Pow(1+growthRate, periods)
	if err := guard.NonZero("(1+rate)^periods-(1+growthRate)^periods", den); err != nil {
		return 0, err
	}

	return futureValue * (rate - growthRate) / den, nil
}
