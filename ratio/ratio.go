// Package ratio implements the accounting ratio catalog: liquidity,
// leverage, efficiency and profitability measures. Every division by a
// quantity that is semantically required to be nonzero is guarded; the pure
// add/sub formulas (net working capital, cash conversion cycle, contribution
// margin) are not.
package ratio

import "github.com/joeychilson/finance-formulas/guard"

// DefaultDaysInYear is the day count used by the day-based efficiency
// formulas when none is supplied.
const DefaultDaysInYear = 365

// DefaultAveragePoints is the divisor for two-point averages.
const DefaultAveragePoints = 2

func daysOrDefault(daysInYear []float64) float64 {
	if len(daysInYear) > 0 {
		return daysInYear[0]
	}

	return DefaultDaysInYear
}

// AssetToSales is total assets over sales revenue.
func AssetToSales(totalAssets, salesRevenue float64) (float64, error) {
	if err := guard.NonZero("salesRevenue", salesRevenue); err != nil {
		return 0, err
	}

	return totalAssets / salesRevenue, nil
}

// AssetTurnover is sales revenue over total assets.
func AssetTurnover(salesRevenue, totalAssets float64) (float64, error) {
	if err := guard.NonZero("totalAssets", totalAssets); err != nil {
		return 0, err
	}

	return salesRevenue / totalAssets, nil
}

// AverageCollectionPeriod is how many days receivables stay outstanding.
//
//	daysInYear / receivablesTurnover
func AverageCollectionPeriod(receivablesTurnover float64, daysInYear ...float64) (float64, error) {
	if err := guard.NonZero("receivablesTurnover", receivablesTurnover); err != nil {
		return 0, err
	}

	return daysOrDefault(daysInYear) / receivablesTurnover, nil
}

// AverageInventory is the simple average of period-boundary inventory
// levels. points defaults to DefaultAveragePoints.
func AverageInventory(beginningInventory, endingInventory float64, points ...float64) (float64, error) {
	n := float64(DefaultAveragePoints)
	if len(points) > 0 {
		n = points[0]
	}

	if err := guard.NonZero("points", n); err != nil {
		return 0, err
	}

	return (beginningInventory + endingInventory) / n, nil
}

// CashConversionCycle is days inventory outstanding plus days sales
// outstanding less days payables outstanding.
func CashConversionCycle(daysInventoryOutstanding, daysSalesOutstanding, daysPayablesOutstanding float64) float64 {
	return daysInventoryOutstanding + daysSalesOutstanding - daysPayablesOutstanding
}

// ContributionMargin is price less variable cost, per unit.
func ContributionMargin(pricePerProduct, variableCostPerProduct float64) float64 {
	return pricePerProduct - variableCostPerProduct
}

// ContributionMarginRatio is the contribution margin as a share of price.
func ContributionMarginRatio(contributionMargin, pricePerProduct float64) (float64, error) {
	if err := guard.NonZero("pricePerProduct", pricePerProduct); err != nil {
		return 0, err
	}

	return contributionMargin / pricePerProduct, nil
}

// CurrentRatio is current assets over current liabilities.
func CurrentRatio(currentAssets, currentLiabilities float64) (float64, error) {
	if err := guard.NonZero("currentLiabilities", currentLiabilities); err != nil {
		return 0, err
	}

	return currentAssets / currentLiabilities, nil
}

// DaysInInventory converts an inventory turnover into days of stock.
func DaysInInventory(inventoryTurnover float64, daysInYear ...float64) (float64, error) {
	if err := guard.NonZero("inventoryTurnover", inventoryTurnover); err != nil {
		return 0, err
	}

	return daysOrDefault(daysInYear) / inventoryTurnover, nil
}

// DaysPayablesOutstanding converts a payables turnover into payment days.
func DaysPayablesOutstanding(payablesTurnover float64, daysInYear ...float64) (float64, error) {
	if err := guard.NonZero("payablesTurnover", payablesTurnover); err != nil {
		return 0, err
	}

	return daysOrDefault(daysInYear) / payablesTurnover, nil
}

// DaysSalesOutstanding is receivables as days of credit sales.
//
//	receivables / creditSales × daysInYear
func DaysSalesOutstanding(receivables, creditSales float64, daysInYear ...float64) (float64, error) {
	if err := guard.NonZero("creditSales", creditSales); err != nil {
		return 0, err
	}

	return receivables / creditSales * daysOrDefault(daysInYear), nil
}

// DebtCoverageRatio is net operating income over the debt service owed.
func DebtCoverageRatio(netOperatingIncome, debtService float64) (float64, error) {
	if err := guard.NonZero("debtService", debtService); err != nil {
		return 0, err
	}

	return netOperatingIncome / debtService, nil
}

// DebtRatio is total liabilities over total assets.
func DebtRatio(totalLiabilities, totalAssets float64) (float64, error) {
	if err := guard.NonZero("totalAssets", totalAssets); err != nil {
		return 0, err
	}

	return totalLiabilities / totalAssets, nil
}

// DebtToEquity is total liabilities over total equity.
func DebtToEquity(totalLiabilities, totalEquity float64) (float64, error) {
	if err := guard.NonZero("totalEquity", totalEquity); err != nil {
		return 0, err
	}

	return totalLiabilities / totalEquity, nil
}

// DebtToIncome is monthly debt payments over gross monthly income.
func DebtToIncome(monthlyDebtPayments, grossMonthlyIncome float64) (float64, error) {
	if err := guard.NonZero("grossMonthlyIncome", grossMonthlyIncome); err != nil {
		return 0, err
	}

	return monthlyDebtPayments / grossMonthlyIncome, nil
}

// GrossProfitMargin is gross profit over sales revenue.
func GrossProfitMargin(grossProfit, salesRevenue float64) (float64, error) {
	if err := guard.NonZero("salesRevenue", salesRevenue); err != nil {
		return 0, err
	}

	return grossProfit / salesRevenue, nil
}

// InterestCoverageRatio is EBIT over the interest expense.
func InterestCoverageRatio(ebit, interestExpense float64) (float64, error) {
	if err := guard.NonZero("interestExpense", interestExpense); err != nil {
		return 0, err
	}

	return ebit / interestExpense, nil
}

// InventoryTurnover is cost of goods sold over average inventory.
func InventoryTurnover(costOfGoodsSold, averageInventory float64) (float64, error) {
	if err := guard.NonZero("averageInventory", averageInventory); err != nil {
		return 0, err
	}

	return costOfGoodsSold / averageInventory, nil
}

// NetProfitMargin is net income over sales revenue.
func NetProfitMargin(netIncome, salesRevenue float64) (float64, error) {
	if err := guard.NonZero("salesRevenue", salesRevenue); err != nil {
		return 0, err
	}

	return netIncome / salesRevenue, nil
}

// NetWorkingCapital is current assets less current liabilities.
func NetWorkingCapital(currentAssets, currentLiabilities float64) float64 {
	return currentAssets - currentLiabilities
}

// OperatingMargin is operating income over sales revenue.
func OperatingMargin(operatingIncome, salesRevenue float64) (float64, error) {
	if err := guard.NonZero("salesRevenue", salesRevenue); err != nil {
		return 0, err
	}

	return operatingIncome / salesRevenue, nil
}

// PayablesTurnover is supplier purchases over average accounts payable.
func PayablesTurnover(totalSupplierPurchases, averageAccountsPayable float64) (float64, error) {
	if err := guard.NonZero("averageAccountsPayable", averageAccountsPayable); err != nil {
		return 0, err
	}

	return totalSupplierPurchases / averageAccountsPayable, nil
}

// QuickRatio excludes inventory from the liquid assets.
//
//	(currentAssets − inventory) / currentLiabilities
func QuickRatio(currentAssets, inventory, currentLiabilities float64) (float64, error) {
	if err := guard.NonZero("currentLiabilities", currentLiabilities); err != nil {
		return 0, err
	}

	return (currentAssets - inventory) / currentLiabilities, nil
}

// ReceivablesTurnover is credit sales over average accounts receivable.
func ReceivablesTurnover(creditSales, averageAccountsReceivable float64) (float64, error) {
	if err := guard.NonZero("averageAccountsReceivable", averageAccountsReceivable); err != nil {
		return 0, err
	}

	return creditSales / averageAccountsReceivable, nil
}

// RetentionRatio is the share of net income kept after dividends.
//
//	(netIncome − dividends) / netIncome
func RetentionRatio(netIncome, dividends float64) (float64, error) {
	if err := guard.NonZero("netIncome", netIncome); err != nil {
		return 0, err
	}

	return (netIncome - dividends) / netIncome, nil
}

// ReturnOnAssets is net income over average total assets.
func ReturnOnAssets(netIncome, averageTotalAssets float64) (float64, error) {
	if err := guard.NonZero("averageTotalAssets", averageTotalAssets); err != nil {
		return 0, err
	}

	return netIncome / averageTotalAssets, nil
}

// ReturnOnEquity is net income over average shareholder equity.
func ReturnOnEquity(netIncome, averageShareholderEquity float64) (float64, error) {
	if err := guard.NonZero("averageShareholderEquity", averageShareholderEquity); err != nil {
		return 0, err
	}

	return netIncome / averageShareholderEquity, nil
}

// ReturnOnInvestment is the gain over the amount invested.
//
//	(earnings − initialInvestment) / initialInvestment
func ReturnOnInvestment(earnings, initialInvestment float64) (float64, error) {
	if err := guard.NonZero("initialInvestment", initialInvestment); err != nil {
		return 0, err
	}

	return (earnings - initialInvestment) / initialInvestment, nil
}
