package catalog

import (
	"github.com/joeychilson/finance-formulas/annuity"
	"github.com/joeychilson/finance-formulas/banking"
	"github.com/joeychilson/finance-formulas/bond"
	"github.com/joeychilson/finance-formulas/depreciation"
	"github.com/joeychilson/finance-formulas/loan"
	"github.com/joeychilson/finance-formulas/portfolio"
	"github.com/joeychilson/finance-formulas/rate"
	"github.com/joeychilson/finance-formulas/ratio"
	"github.com/joeychilson/finance-formulas/stock"
	"github.com/joeychilson/finance-formulas/tvm"
)

// binding connects a descriptor entry to its Go function. fn receives one
// normalized value per declared parameter: float64 for scalars, []float64
// for sequences, []portfolio.WeightedValue for pairs.
type binding struct {
	arity int
	fn    func(args []any) (float64, error)
}

func fn1(f func(float64) (float64, error)) binding {
	return binding{arity: 1, fn: func(args []any) (float64, error) {
		return f(args[0].(float64))
	}}
}

func fn2(f func(float64, float64) (float64, error)) binding {
	return binding{arity: 2, fn: func(args []any) (float64, error) {
		return f(args[0].(float64), args[1].(float64))
	}}
}

func fn3(f func(float64, float64, float64) (float64, error)) binding {
	return binding{arity: 3, fn: func(args []any) (float64, error) {
		return f(args[0].(float64), args[1].(float64), args[2].(float64))
	}}
}

func fn4(f func(float64, float64, float64, float64) (float64, error)) binding {
	return binding{arity: 4, fn: func(args []any) (float64, error) {
		return f(args[0].(float64), args[1].(float64), args[2].(float64), args[3].(float64))
	}}
}

func pure1(f func(float64) float64) binding {
	return binding{arity: 1, fn: func(args []any) (float64, error) {
		return f(args[0].(float64)), nil
	}}
}

func pure2(f func(float64, float64) float64) binding {
	return binding{arity: 2, fn: func(args []any) (float64, error) {
		return f(args[0].(float64), args[1].(float64)), nil
	}}
}

func pure3(f func(float64, float64, float64) float64) binding {
	return binding{arity: 3, fn: func(args []any) (float64, error) {
		return f(args[0].(float64), args[1].(float64), args[2].(float64)), nil
	}}
}

var bindings = map[string]binding{
	// tvm
	"present_value":                       fn3(tvm.PresentValue),
	"present_value_factor":                fn2(tvm.PresentValueFactor),
	"future_value":                        pure3(tvm.FutureValue),
	"future_value_factor":                 pure2(tvm.FutureValueFactor),
	"future_value_continuous_compounding": pure3(tvm.FutureValueContinuousCompounding),
	"net_present_value": {arity: 3, fn: func(args []any) (float64, error) {
		return tvm.NetPresentValue(args[0].(float64), args[1].([]float64), args[2].(float64))
	}},
	"number_of_periods": fn3(tvm.NumberOfPeriods),

	// annuity
	"annuity_present_value":                       fn3(annuity.PresentValue),
	"annuity_present_value_factor":                fn2(annuity.PresentValueFactor),
	"annuity_future_value":                        fn3(annuity.FutureValue),
	"annuity_future_value_continuous_compounding": fn3(annuity.FutureValueContinuousCompounding),
	"annuity_payment_present_value":               fn3(annuity.PaymentFromPresentValue),
	"annuity_payment_future_value":                fn3(annuity.PaymentFromFutureValue),
	"annuity_due_present_value":                   fn3(annuity.DuePresentValue),
	"annuity_due_future_value":                    fn3(annuity.DueFutureValue),
	"annuity_due_payment_present_value":           fn3(annuity.DuePaymentFromPresentValue),
	"annuity_due_payment_future_value":            fn3(annuity.DuePaymentFromFutureValue),
	"growing_annuity_present_value":               fn4(annuity.GrowingPresentValue),
	"growing_annuity_future_value":                fn4(annuity.GrowingFutureValue),
	"growing_annuity_payment_present_value":       fn4(annuity.GrowingPaymentFromPresentValue),
	"growing_annuity_payment_future_value":        fn4(annuity.GrowingPaymentFromFutureValue),
	"perpetuity":         fn2(annuity.Perpetuity),
	"growing_perpetuity": fn3(annuity.GrowingPerpetuity),
	"perpetuity_yield":   fn2(annuity.PerpetuityYield),
	"perpetuity_payment": pure2(annuity.PerpetuityPayment),

	// banking
	"annual_percentage_yield": fn2(func(r, n float64) (float64, error) {
		return banking.AnnualPercentageYield(r, n)
	}),
	"compound_interest": fn4(func(p, r, y, n float64) (float64, error) {
		return banking.CompoundInterest(p, r, y, n)
	}),
	"compound_interest_earned": fn4(func(p, r, y, n float64) (float64, error) {
		return banking.CompoundInterestEarned(p, r, y, n)
	}),
	"continuous_compounding":                pure3(banking.ContinuousCompounding),
	"simple_interest":                       pure3(banking.SimpleInterest),
	"simple_interest_principal":             fn3(banking.SimpleInterestPrincipal),
	"simple_interest_rate":                  fn3(banking.SimpleInterestRate),
	"simple_interest_time":                  fn3(banking.SimpleInterestTime),
	"doubling_time":                         fn1(banking.DoublingTime),
	"doubling_time_continuous_compounding":  fn1(banking.DoublingTimeContinuousCompounding),
	"doubling_time_simple_interest":         fn1(banking.DoublingTimeSimpleInterest),
	"rule_of_72":                            fn1(banking.RuleOf72),

	// loan
	"loan_payment":              fn3(loan.Payment),
	"balloon_loan_payment":      fn4(loan.BalloonLoanPayment),
	"remaining_balance_on_loan": fn4(loan.RemainingBalance),
	"loan_to_value_ratio":       fn2(loan.LoanToValue),
	"loan_to_deposit_ratio":     fn2(loan.LoanToDeposit),

	// bond
	"bid_ask_spread": pure2(bond.BidAskSpread),
	"bond_equivalent_yield": fn4(func(f, p, d, y float64) (float64, error) {
		return bond.BondEquivalentYield(f, p, d, y)
	}),
	"current_yield":                    fn2(bond.CurrentYield),
	"yield_to_maturity":                fn4(bond.YieldToMaturity),
	"zero_coupon_bond_value":           fn3(bond.ZeroCouponBondValue),
	"zero_coupon_bond_effective_yield": fn3(bond.ZeroCouponBondYield),
	"tax_equivalent_yield":             fn2(bond.TaxEquivalentYield),

	// stock
	"book_value_per_share":              fn2(stock.BookValuePerShare),
	"capital_asset_pricing_model":       pure3(stock.CapitalAssetPricingModel),
	"capital_gains_yield":               fn2(stock.CapitalGainsYield),
	"diluted_earnings_per_share":        fn4(stock.DilutedEarningsPerShare),
	"dividend_payout_ratio":             fn2(stock.DividendPayoutRatio),
	"dividend_yield":                    fn2(stock.DividendYield),
	"dividends_per_share":               fn2(stock.DividendsPerShare),
	"earnings_per_share":                fn2(stock.EarningsPerShare),
	"equity_multiplier":                 fn2(stock.EquityMultiplier),
	"estimated_earnings":                pure2(stock.EstimatedEarnings),
	"estimated_earnings_with_margin":    pure2(stock.EstimatedEarningsWithMargin),
	"net_asset_value":                   fn3(stock.NetAssetValue),
	"preferred_stock_value":             fn2(stock.PreferredStockValue),
	"rate_of_return_preferred_stock":    fn2(stock.RateOfReturnPreferredStock),
	"price_to_book_value":               fn2(stock.PriceToBookValue),
	"price_to_earnings":                 fn2(stock.PriceToEarnings),
	"price_to_earnings_growth":          fn2(stock.PriceToEarningsGrowth),
	"price_to_sales":                    fn2(stock.PriceToSales),
	"stock_present_value_constant_growth": fn3(stock.ConstantGrowthValue),
	"stock_present_value_zero_growth":     fn2(stock.ZeroGrowthValue),
	"total_stock_return":                  fn3(stock.TotalReturn),

	// portfolio
	"weighted_average": {arity: 1, fn: func(args []any) (float64, error) {
		return portfolio.WeightedAverage(args[0].([]portfolio.WeightedValue)), nil
	}},
	"expected_return": {arity: 1, fn: func(args []any) (float64, error) {
		return portfolio.ExpectedReturn(args[0].([]portfolio.WeightedValue)), nil
	}},
	"weighted_mean": {arity: 2, fn: func(args []any) (float64, error) {
		return portfolio.WeightedMean(args[0].([]float64), args[1].([]float64))
	}},
	"geometric_mean_return": {arity: 1, fn: func(args []any) (float64, error) {
		return portfolio.GeometricMeanReturn(args[0].([]float64))
	}},
	"holding_period_return": {arity: 1, fn: func(args []any) (float64, error) {
		return portfolio.HoldingPeriodReturn(args[0].([]float64)), nil
	}},
	"real_rate_of_return": fn2(portfolio.RealRateOfReturn),

	// ratio
	"asset_to_sales": fn2(ratio.AssetToSales),
	"asset_turnover": fn2(ratio.AssetTurnover),
	"average_collection_period": fn2(func(turnover, days float64) (float64, error) {
		return ratio.AverageCollectionPeriod(turnover, days)
	}),
	"average_inventory": fn3(func(begin, end, points float64) (float64, error) {
		return ratio.AverageInventory(begin, end, points)
	}),
	"cash_conversion_cycle":     pure3(ratio.CashConversionCycle),
	"contribution_margin":       pure2(ratio.ContributionMargin),
	"contribution_margin_ratio": fn2(ratio.ContributionMarginRatio),
	"current_ratio":             fn2(ratio.CurrentRatio),
	"days_in_inventory": fn2(func(turnover, days float64) (float64, error) {
		return ratio.DaysInInventory(turnover, days)
	}),
	"days_payables_outstanding": fn2(func(turnover, days float64) (float64, error) {
		return ratio.DaysPayablesOutstanding(turnover, days)
	}),
	"days_sales_outstanding": fn3(func(receivables, creditSales, days float64) (float64, error) {
		return ratio.DaysSalesOutstanding(receivables, creditSales, days)
	}),
	"debt_coverage_ratio":     fn2(ratio.DebtCoverageRatio),
	"debt_ratio":              fn2(ratio.DebtRatio),
	"debt_to_equity_ratio":    fn2(ratio.DebtToEquity),
	"debt_to_income_ratio":    fn2(ratio.DebtToIncome),
	"gross_profit_margin":     fn2(ratio.GrossProfitMargin),
	"interest_coverage_ratio": fn2(ratio.InterestCoverageRatio),
	"inventory_turnover":      fn2(ratio.InventoryTurnover),
	"net_profit_margin":       fn2(ratio.NetProfitMargin),
	"net_working_capital":     pure2(ratio.NetWorkingCapital),
	"operating_margin":        fn2(ratio.OperatingMargin),
	"payables_turnover":       fn2(ratio.PayablesTurnover),
	"quick_ratio":             fn3(ratio.QuickRatio),
	"receivables_turnover":    fn2(ratio.ReceivablesTurnover),
	"retention_ratio":         fn2(ratio.RetentionRatio),
	"return_on_assets":        fn2(ratio.ReturnOnAssets),
	"return_on_equity":        fn2(ratio.ReturnOnEquity),
	"return_on_investment":    fn2(ratio.ReturnOnInvestment),

	// depreciation
	"straight_line_depreciation":            fn3(depreciation.StraightLine),
	"straight_line_rate":                    fn1(depreciation.StraightLineRate),
	"declining_balance_depreciation":        pure2(depreciation.DecliningBalance),
	"double_declining_balance_depreciation": fn2(depreciation.DoubleDecliningBalance),
	"units_of_production_depreciation":      fn4(depreciation.UnitsOfProduction),
	"sum_of_years_digits_depreciation":      fn4(depreciation.SumOfYearsDigits),

	// rate
	"to_percentage":   pure1(rate.ToPercentage),
	"from_percentage": pure1(rate.FromPercentage),
	"to_basis_points": pure1(rate.ToBasisPoints),
}
