// Package depreciation implements per-period depreciation charges. Each
// function returns the charge for a single period; none of them track book
// value across calls.
package depreciation

import "github.com/joeychilson/finance-formulas/guard"

// StraightLine spreads the depreciable base evenly over the useful life.
//
//	(cost − salvage) / usefulLife
func StraightLine(cost, salvageValue, usefulLife float64) (float64, error) {
	if err := guard.NonZero("usefulLife", usefulLife); err != nil {
		return 0, err
	}

	return (cost - salvageValue) / usefulLife, nil
}

// StraightLineRate is the annual fraction written off, 1/usefulLife.
func StraightLineRate(usefulLife float64) (float64, error) {
	if err := guard.NonZero("usefulLife", usefulLife); err != nil {
		return 0, err
	}

	return 1 / usefulLife, nil
}

// DecliningBalance is the period charge at a fixed rate against the book
// value at the start of the period.
func DecliningBalance(bookValueAtPeriodStart, rate float64) float64 {
	return bookValueAtPeriodStart * rate
}

// DoubleDecliningBalance charges twice the straight-line rate against the
// opening book value.
func DoubleDecliningBalance(bookValueAtPeriodStart, usefulLife float64) (float64, error) {
	if err := guard.NonZero("usefulLife", usefulLife); err != nil {
		return 0, err
	}

	return bookValueAtPeriodStart * 2 / usefulLife, nil
}

// UnitsOfProduction depreciates by usage rather than time.
//
//	(cost − salvage) / estimatedTotalUnits × unitsProduced
func UnitsOfProduction(cost, salvageValue, estimatedTotalUnits, unitsProduced float64) (float64, error) {
	if err := guard.NonZero("estimatedTotalUnits", estimatedTotalUnits); err != nil {
		return 0, err
	}

	return (cost - salvageValue) / estimatedTotalUnits * unitsProduced, nil
}

// SumOfYearsDigits front-loads depreciation; year is 1-based.
//
//	(cost − salvage) × (life − year + 1) / (life×(life+1)/2)
func SumOfYearsDigits(cost, salvageValue, usefulLife, year float64) (float64, error) {
	if err := guard.NonZero("usefulLife", usefulLife); err != nil {
		return 0, err
	}

	digits := usefulLife * (usefulLife + 1) / 2

	return (cost - salvageValue) * (usefulLife - year + 1) / digits, nil
}
