// Package stock implements equity formulas: per-share metrics, pricing
// multiples, dividend measures and the dividend-discount valuation models.
package stock

import "github.com/joeychilson/finance-formulas/guard"

// BookValuePerShare is common equity over shares outstanding.
func BookValuePerShare(totalCommonEquity, sharesOutstanding float64) (float64, error) {
	if err := guard.NonZero("sharesOutstanding", sharesOutstanding); err != nil {
		return 0, err
	}

	return totalCommonEquity / sharesOutstanding, nil
}

// CapitalAssetPricingModel is the expected return for beta exposure.
//
//	r = rf + beta × (rm − rf)
func CapitalAssetPricingModel(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// CapitalGainsYield is the price appreciation over the starting price.
func CapitalGainsYield(initialPrice, endingPrice float64) (float64, error) {
	if err := guard.NonZero("initialPrice", initialPrice); err != nil {
		return 0, err
	}

	return (endingPrice - initialPrice) / initialPrice, nil
}

// EarningsPerShare is net income over the weighted average share count.
func EarningsPerShare(netIncome, weightedAverageShares float64) (float64, error) {
	if err := guard.NonZero("weightedAverageShares", weightedAverageShares); err != nil {
		return 0, err
	}

	return netIncome / weightedAverageShares, nil
}

// DilutedEarningsPerShare spreads income net of preferred dividends over the
// share count as if all convertibles were exercised.
func DilutedEarningsPerShare(netIncome, preferredDividends, averageShares, otherConvertibleInstruments float64) (float64, error) {
	shares := averageShares + otherConvertibleInstruments
	if err := guard.NonZero("averageShares+otherConvertibleInstruments", shares); err != nil {
		return 0, err
	}

	return (netIncome - preferredDividends) / shares, nil
}

// DividendPayoutRatio is dividends over net income.
func DividendPayoutRatio(dividends, netIncome float64) (float64, error) {
	if err := guard.NonZero("netIncome", netIncome); err != nil {
		return 0, err
	}

	return dividends / netIncome, nil
}

// DividendYield is the annual dividend over the share price.
func DividendYield(annualDividendPerShare, pricePerShare float64) (float64, error) {
	if err := guard.NonZero("pricePerShare", pricePerShare); err != nil {
		return 0, err
	}

	return annualDividendPerShare / pricePerShare, nil
}

// DividendsPerShare is total dividends paid over shares outstanding.
func DividendsPerShare(dividends, sharesOutstanding float64) (float64, error) {
	if err := guard.NonZero("sharesOutstanding", sharesOutstanding); err != nil {
		return 0, err
	}

	return dividends / sharesOutstanding, nil
}

// EquityMultiplier is total assets over total equity.
func EquityMultiplier(totalAssets, totalEquity float64) (float64, error) {
	if err := guard.NonZero("totalEquity", totalEquity); err != nil {
		return 0, err
	}

	return totalAssets / totalEquity, nil
}

// EstimatedEarnings is forecasted sales less forecasted expenses.
func EstimatedEarnings(forecastedSales, forecastedExpenses float64) float64 {
	return forecastedSales - forecastedExpenses
}

// EstimatedEarningsWithMargin projects earnings from sales at a target net
// profit margin.
func EstimatedEarningsWithMargin(projectedSales, projectedNetProfitMargin float64) float64 {
	return projectedSales * projectedNetProfitMargin
}

// NetAssetValue is a fund's assets net of liabilities, per share.
func NetAssetValue(fundAssets, fundLiabilities, sharesOutstanding float64) (float64, error) {
	if err := guard.NonZero("sharesOutstanding", sharesOutstanding); err != nil {
		return 0, err
	}

	return (fundAssets - fundLiabilities) / sharesOutstanding, nil
}

// PreferredStockValue prices a fixed dividend as a perpetuity.
func PreferredStockValue(dividend, discountRate float64) (float64, error) {
	if err := guard.NonZero("discountRate", discountRate); err != nil {
		return 0, err
	}

	return dividend / discountRate, nil
}

// RateOfReturnPreferredStock is the implied return at a given price.
func RateOfReturnPreferredStock(dividend, price float64) (float64, error) {
	if err := guard.NonZero("price", price); err != nil {
		return 0, err
	}

	return dividend / price, nil
}

// PriceToBookValue compares market price to book value per share.
func PriceToBookValue(marketPricePerShare, bookValuePerShare float64) (float64, error) {
	if err := guard.NonZero("bookValuePerShare", bookValuePerShare); err != nil {
		return 0, err
	}

	return marketPricePerShare / bookValuePerShare, nil
}

// PriceToEarnings is price per share over earnings per share.
func PriceToEarnings(pricePerShare, earningsPerShare float64) (float64, error) {
	if err := guard.NonZero("earningsPerShare", earningsPerShare); err != nil {
		return 0, err
	}

	return pricePerShare / earningsPerShare, nil
}

// PriceToEarningsGrowth scales the P/E multiple by expected earnings growth.
func PriceToEarningsGrowth(priceToEarnings, earningsGrowthRate float64) (float64, error) {
	if err := guard.NonZero("earningsGrowthRate", earningsGrowthRate); err != nil {
		return 0, err
	}

	return priceToEarnings / earningsGrowthRate, nil
}

// PriceToSales is price per share over sales per share.
func PriceToSales(pricePerShare, salesPerShare float64) (float64, error) {
	if err := guard.NonZero("salesPerShare", salesPerShare); err != nil {
		return 0, err
	}

	return pricePerShare / salesPerShare, nil
}

// ConstantGrowthValue is the Gordon growth model.
//
//	V = D1 / (k − g)
func ConstantGrowthValue(estimatedDividend, requiredRateOfReturn, growthRate float64) (float64, error) {
	if err := guard.NonZero("requiredRateOfReturn-growthRate", requiredRateOfReturn-growthRate); err != nil {
		return 0, err
	}

	return estimatedDividend / (requiredRateOfReturn - growthRate), nil
}

// ZeroGrowthValue prices a constant dividend stream.
func ZeroGrowthValue(dividend, requiredRateOfReturn float64) (float64, error) {
	if err := guard.NonZero("requiredRateOfReturn", requiredRateOfReturn); err != nil {
		return 0, err
	}

	return dividend / requiredRateOfReturn, nil
}

// TotalReturn is price appreciation plus dividends over the starting price.
func TotalReturn(initialPrice, endingPrice, dividends float64) (float64, error) {
	if err := guard.NonZero("initialPrice", initialPrice); err != nil {
		return 0, err
	}

	return ((endingPrice - initialPrice) + dividends) / initialPrice, nil
}
