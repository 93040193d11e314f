package annuity

import "github.com/joeychilson/finance-formulas/guard"

// Perpetuity is the present value of a fixed payment that never stops.
//
//	PV = payment / rate
func Perpetuity(payment, rate float64) (float64, error) {
	if err := guard.NonZero("rate", rate); err != nil {
		return 0, err
	}

	return payment / rate, nil
}

// GrowingPerpetuity is the present value of a payment growing forever.
//
//	PV = payment / (rate − growthRate)
func GrowingPerpetuity(payment, rate, growthRate float64) (float64, error) {
	if err := guard.NonZero("rate-growthRate", rate-growthRate); err != nil {
		return 0, err
	}

	return payment / (rate - growthRate), nil
}

// PerpetuityYield backs the implied rate out of a perpetuity's price.
func PerpetuityYield(payment, presentValue float64) (float64, error) {
	if err := guard.NonZero("presentValue", presentValue); err != nil {
		return 0, err
	}

	return payment / presentValue, nil
}

// PerpetuityPayment is the payment a perpetuity priced at presentValue makes.
func PerpetuityPayment(presentValue, rate float64) float64 {
	return presentValue * rate
}
