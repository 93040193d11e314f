// Package loan implements lending formulas: level payments, balloon
// payments, remaining balances and the loan exposure ratios.
package loan

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// Payment is the level per-period payment that amortizes principal over
// periods at ratePerPeriod.
//
//	P = principal × rate / (1 − (1+rate)^−periods)
func Payment(principal, ratePerPeriod, periods float64) (float64, error) {
	if err := guard.NonZero("ratePerPeriod", ratePerPeriod); err != nil {
		return 0, err
	}

	den := 1 - math.Pow(1+ratePerPeriod, -periods)
	if err := guard.NonZero("1-(1+ratePerPeriod)^-periods", den); err != nil {
		return 0, err
	}

	return principal * ratePerPeriod / den, nil
}

// BalloonLoanPayment is the level payment on a loan that leaves balloon
// outstanding after the last period.
func BalloonLoanPayment(presentValue, balloon, ratePerPeriod, periods float64) (float64, error) {
	if err := guard.NonZero("1+ratePerPeriod", 1+ratePerPeriod); err != nil {
		return 0, err
	}

	return Payment(presentValue-balloon/math.Pow(1+ratePerPeriod, periods), ratePerPeriod, periods)
}

// RemainingBalance after paymentsMade level payments of payment against
// presentValue at ratePerPeriod.
//
//	B = PV×(1+rate)^m − payment × ((1+rate)^m − 1)/rate
func RemainingBalance(presentValue, payment, ratePerPeriod, paymentsMade float64) (float64, error) {
	if err := guard.NonZero("ratePerPeriod", ratePerPeriod); err != nil {
		return 0, err
	}

	grown := math.Pow(1+ratePerPeriod, paymentsMade)

	return presentValue*grown - payment*(grown-1)/ratePerPeriod, nil
}

// LoanToValue is the loan amount over the appraised asset value.
func LoanToValue(loanAmount, assetValue float64) (float64, error) {
	if err := guard.NonZero("assetValue", assetValue); err != nil {
		return 0, err
	}

	return loanAmount / assetValue, nil
}

// LoanToDeposit is outstanding loans over total deposits.
func LoanToDeposit(loans, deposits float64) (float64, error) {
	if err := guard.NonZero("deposits", deposits); err != nil {
		return 0, err
	}

	return loans / deposits, nil
}
