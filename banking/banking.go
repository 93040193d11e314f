// Package banking implements deposit and interest formulas: effective
// yields, compound and simple interest, and the time it takes money to
// double.
//
// Formulas with a compounding frequency take it as an optional trailing
// argument defaulting to DefaultPeriodsPerYear (monthly).
package banking

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// DefaultPeriodsPerYear is the compounding frequency used when none is
// supplied.
const DefaultPeriodsPerYear = 12

func periodsOrDefault(periodsPerYear []float64) float64 {
	if len(periodsPerYear) > 0 {
		return periodsPerYear[0]
	}

	return DefaultPeriodsPerYear
}

// AnnualPercentageYield is the effective annual rate of a nominal rate
// compounded periodsPerYear times per year.
//
//	APY = (1 + rate/n)^n − 1
func AnnualPercentageYield(rate float64, periodsPerYear ...float64) (float64, error) {
	n := periodsOrDefault(periodsPerYear)
	if err := guard.NonZero("periodsPerYear", n); err != nil {
		return 0, err
	}

	return math.Pow(1+rate/n, n) - 1, nil
}

// CompoundInterest is the balance of principal after years of compounding at
// the nominal annual rate.
//
//	B = principal × (1 + rate/n)^(n×years)
func CompoundInterest(principal, rate, years float64, periodsPerYear ...float64) (float64, error) {
	n := periodsOrDefault(periodsPerYear)
	if err := guard.NonZero("periodsPerYear", n); err != nil {
		return 0, err
	}

	return principal * math.Pow(1+rate/n, n*years), nil
}

// CompoundInterestEarned is CompoundInterest less the principal.
func CompoundInterestEarned(principal, rate, years float64, periodsPerYear ...float64) (float64, error) {
	balance, err := CompoundInterest(principal, rate, years, periodsPerYear...)
	if err != nil {
		return 0, err
	}

	return balance - principal, nil
}

// ContinuousCompounding is the balance of principal compounded continuously.
//
//	B = principal × e^(rate×time)
func ContinuousCompounding(principal, rate, time float64) float64 {
	return principal * math.Exp(rate*time)
}

// SimpleInterest earned by principal at rate over time.
func SimpleInterest(principal, rate, time float64) float64 {
	return principal * rate * time
}

// SimpleInterestPrincipal backs the principal out of a simple-interest amount.
func SimpleInterestPrincipal(interest, rate, time float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	if err := guard.NonZero("time", time); err != nil {
		return 0, err
	}

	return interest / (rate * time), nil
}

// SimpleInterestRate backs the rate out of a simple-interest amount.
func SimpleInterestRate(interest, principal, time float64) (float64, error) {
	if err := guard.NonZero("principal", principal); err != nil {
		return 0, err
	}

	if err := guard.NonZero("time", time); err != nil {
		return 0, err
	}

	return interest / (principal * time), nil
}

// SimpleInterestTime backs the term out of a simple-interest amount.
func SimpleInterestTime(interest, principal, rate float64) (float64, error) {
	if err := guard.NonZero("principal", principal); err != nil {
		return 0, err
	}

	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return interest / (principal * rate), nil
}

// DoublingTime is the number of periods for a balance to double when
// compounding at rate per period.
//
//	t = ln 2 / ln(1+rate)
func DoublingTime(rate float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return math.Ln2 / math.Log(1+rate), nil
}

// DoublingTimeContinuousCompounding is ln 2 / rate.
func DoublingTimeContinuousCompounding(rate float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return math.Ln2 / rate, nil
}

// DoublingTimeSimpleInterest is 1 / rate.
func DoublingTimeSimpleInterest(rate float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return 1 / rate, nil
}

// RuleOf72 estimates doubling time from a rate expressed in percent.
func RuleOf72(rate float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return 72 / rate, nil
}
