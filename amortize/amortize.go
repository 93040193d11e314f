// Package amortize builds level-payment amortization schedules on top of the
// loan payment formula. Schedule rows are money amounts, so they are rounded
// to cents; the underlying formulas stay full precision.
package amortize

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/shopspring/decimal"

	"github.com/joeychilson/finance-formulas/loan"
)

// Row is one period of a schedule. Balance is the amount still owed after
// the period's payment.
type Row struct {
	Period    int
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule amortizes principal over months at the nominal annualRate,
// compounding monthly. The last payment absorbs the rounding residual so the
// balance lands exactly on zero.
func Schedule(principal, annualRate float64, months int) ([]Row, error) {
	if months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive", commerr.ErrInvalidArgument)
	}

	var payment float64

	monthlyRate := annualRate / 12

	if annualRate == 0 {
		payment = principal / float64(months)
	} else {
		var err error

		payment, err = loan.Payment(principal, monthlyRate, float64(months))
		if err != nil {
			return nil, err
		}
	}

	paymentD := decimal.NewFromFloat(payment).Round(2)
	rateD := decimal.NewFromFloat(monthlyRate)
	balance := decimal.NewFromFloat(principal).Round(2)

	rows := make([]Row, 0, months)

	for period := 1; period <= months; period++ {
		interest := balance.Mul(rateD).Round(2)

		pay := paymentD
		principalPart := pay.Sub(interest)

		if period == months || principalPart.GreaterThan(balance) {
			principalPart = balance
			pay = interest.Add(principalPart)
		}

		balance = balance.Sub(principalPart)

		rows = append(rows, Row{
			Period:    period,
			Payment:   pay,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}

	return rows, nil
}
