// Package bond implements fixed-income formulas: spreads, yields and
// zero-coupon valuation.
package bond

import (
	"math"

	"github.com/joeychilson/finance-formulas/guard"
)

// DefaultDaysInYear is the day count used when none is supplied.
const DefaultDaysInYear = 365

func daysOrDefault(daysInYear []float64) float64 {
	if len(daysInYear) > 0 {
		return daysInYear[0]
	}

	return DefaultDaysInYear
}

// BidAskSpread is the quoted ask less the quoted bid.
func BidAskSpread(bid, ask float64) float64 {
	return ask - bid
}

// BondEquivalentYield annualizes a discount instrument's return on a
// day-count basis.
//
//	BEY = (face − price)/price × daysInYear/daysToMaturity
func BondEquivalentYield(faceValue, price, daysToMaturity float64, daysInYear ...float64) (float64, error) {
	if err := guard.NonZero("price", price); err != nil {
		return 0, err
	}

	if err := guard.NonZero("daysToMaturity", daysToMaturity); err != nil {
		return 0, err
	}

	days := daysOrDefault(daysInYear)
	if err := guard.NonZero("daysInYear", days); err != nil {
		return 0, err
	}

	return (faceValue - price) / price * (days / daysToMaturity), nil
}

// CurrentYield is the annual coupon income over the market price.
func CurrentYield(annualCoupons, price float64) (float64, error) {
	if err := guard.NonZero("price", price); err != nil {
		return 0, err
	}

	return annualCoupons / price, nil
}

// YieldToMaturity is the standard closed-form approximation, averaging the
// face and market price in the denominator.
//
//	YTM ≈ (C + (F−P)/n) / ((F+P)/2)
func YieldToMaturity(annualCoupon, faceValue, price, yearsToMaturity float64) (float64, error) {
	if err := guard.NonZero("yearsToMaturity", yearsToMaturity); err != nil {
		return 0, err
	}

	if err := guard.NonZero("faceValue+price", faceValue+price); err != nil {
		return 0, err
	}

	return (annualCoupon + (faceValue-price)/yearsToMaturity) / ((faceValue + price) / 2), nil
}

// ZeroCouponBondValue discounts a single face payment to today.
//
//	V = F / (1+rate)^years
func ZeroCouponBondValue(faceValue, rate, yearsToMaturity float64) (float64, error) {
	if err := guard.NonZero("1+rate", 1+rate); err != nil {
		return 0, err
	}

	return faceValue / math.Pow(1+rate, yearsToMaturity), nil
}

// ZeroCouponBondYield is the implied annual yield of a zero bought at
// presentValue.
//
//	y = (F/PV)^(1/years) − 1
func ZeroCouponBondYield(faceValue, presentValue, yearsToMaturity float64) (float64, error) {
	if err := guard.NonZero("presentValue", presentValue); err != nil {
		return 0, err
	}

	if err := guard.NonZero("yearsToMaturity", yearsToMaturity); err != nil {
		return 0, err
	}

	return math.Pow(faceValue/presentValue, 1/yearsToMaturity) - 1, nil
}

// TaxEquivalentYield is the pre-tax yield a taxable bond must pay to match a
// tax-free one.
//
//	TEY = taxFreeYield / (1 − taxRate)
func TaxEquivalentYield(taxFreeYield, taxRate float64) (float64, error) {
	if err := guard.NonZero("1-taxRate", 1-taxRate); err != nil {
		return 0, err
	}

	return taxFreeYield / (1 - taxRate), nil
}
