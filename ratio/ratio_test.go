package ratio

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestCurrentRatio(t *testing.T) {
	v, err := CurrentRatio(100, 200)
	assert.Nil(t, err)
	assert.InDelta(t, 0.5, v, eps)

	_, err = CurrentRatio(100, 0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestCashConversionCycle(t *testing.T) {
	assert.Equal(t, 50.0, CashConversionCycle(82, 34, 66))
}

func TestUnguardedFormulas(t *testing.T) {
	assert.InDelta(t, 40.0, ContributionMargin(100, 60), eps)
	assert.InDelta(t, -250.0, NetWorkingCapital(750, 1000), eps)
}

func TestDayCountDefaults(t *testing.T) {
	v, err := AverageCollectionPeriod(10)
	assert.Nil(t, err)
	assert.InDelta(t, 36.5, v, eps)

	v, err = AverageCollectionPeriod(10, 360)
	assert.Nil(t, err)
	assert.InDelta(t, 36.0, v, eps)

	v, err = DaysInInventory(5)
	assert.Nil(t, err)
	assert.InDelta(t, 73.0, v, eps)

	v, err = DaysPayablesOutstanding(5)
	assert.Nil(t, err)
	assert.InDelta(t, 73.0, v, eps)

	v, err = DaysSalesOutstanding(100, 1000)
	assert.Nil(t, err)
	assert.InDelta(t, 36.5, v, eps)

	v, err = DaysSalesOutstanding(100, 1000, 360)
	assert.Nil(t, err)
	assert.InDelta(t, 36.0, v, eps)

	v, err = AverageInventory(100, 200)
	assert.Nil(t, err)
	assert.InDelta(t, 150.0, v, eps)

	v, err = AverageInventory(100, 200, 4)
	assert.Nil(t, err)
	assert.InDelta(t, 75.0, v, eps)

	_, err = AverageInventory(100, 200, 0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestDivisionRatios(t *testing.T) {
	cases := []struct {
		name string
		got  func() (float64, error)
		want float64
	}{
		{"AssetToSales", func() (float64, error) { return AssetToSales(500, 1000) }, 0.5},
		{"AssetTurnover", func() (float64, error) { return AssetTurnover(1000, 500) }, 2},
		{"ContributionMarginRatio", func() (float64, error) { return ContributionMarginRatio(40, 100) }, 0.4},
		{"DebtCoverageRatio", func() (float64, error) { return DebtCoverageRatio(120, 100) }, 1.2},
		{"DebtRatio", func() (float64, error) { return DebtRatio(400, 1000) }, 0.4},
		{"DebtToEquity", func() (float64, error) { return DebtToEquity(400, 600) }, 0.6666666666666666},
		{"DebtToIncome", func() (float64, error) { return DebtToIncome(1500, 5000) }, 0.3},
		{"GrossProfitMargin", func() (float64, error) { return GrossProfitMargin(400, 1000) }, 0.4},
		{"InterestCoverageRatio", func() (float64, error) { return InterestCoverageRatio(500, 100) }, 5},
		{"InventoryTurnover", func() (float64, error) { return InventoryTurnover(600, 150) }, 4},
		{"NetProfitMargin", func() (float64, error) { return NetProfitMargin(100, 1000) }, 0.1},
		{"OperatingMargin", func() (float64, error) { return OperatingMargin(150, 1000) }, 0.15},
		{"PayablesTurnover", func() (float64, error) { return PayablesTurnover(500, 100) }, 5},
		{"QuickRatio", func() (float64, error) { return QuickRatio(300, 100, 400) }, 0.5},
		{"ReceivablesTurnover", func() (float64, error) { return ReceivablesTurnover(1000, 200) }, 5},
		{"RetentionRatio", func() (float64, error) { return RetentionRatio(100, 25) }, 0.75},
		{"ReturnOnAssets", func() (float64, error) { return ReturnOnAssets(100, 2000) }, 0.05},
		{"ReturnOnEquity", func() (float64, error) { return ReturnOnEquity(100, 500) }, 0.2},
		{"ReturnOnInvestment", func() (float64, error) { return ReturnOnInvestment(150, 100) }, 0.5},
	}

	for _, c := range cases {
		v, err := c.got()
		assert.Nil(t, err, c.name)
		assert.InDelta(t, c.want, v, eps, c.name)
	}
}

func TestZeroDenominators(t *testing.T) {
	cases := []struct {
		name string
		got  func() (float64, error)
	}{
		{"AssetToSales", func() (float64, error) { return AssetToSales(500, 0) }},
		{"AssetTurnover", func() (float64, error) { return AssetTurnover(1000, 0) }},
		{"AverageCollectionPeriod", func() (float64, error) { return AverageCollectionPeriod(0) }},
		{"ContributionMarginRatio", func() (float64, error) { return ContributionMarginRatio(40, 0) }},
		{"DaysInInventory", func() (float64, error) { return DaysInInventory(0) }},
		{"DaysPayablesOutstanding", func() (float64, error) { return DaysPayablesOutstanding(0) }},
		{"DaysSalesOutstanding", func() (float64, error) { return DaysSalesOutstanding(100, 0) }},
		{"DebtCoverageRatio", func() (float64, error) { return DebtCoverageRatio(120, 0) }},
		{"DebtRatio", func() (float64, error) { return DebtRatio(400, 0) }},
		{"DebtToEquity", func() (float64, error) { return DebtToEquity(400, 0) }},
		{"DebtToIncome", func() (float64, error) { return DebtToIncome(1500, 0) }},
		{"GrossProfitMargin", func() (float64, error) { return GrossProfitMargin(400, 0) }},
		{"InterestCoverageRatio", func() (float64, error) { return InterestCoverageRatio(500, 0) }},
		{"InventoryTurnover", func() (float64, error) { return InventoryTurnover(600, 0) }},
		{"NetProfitMargin", func() (float64, error) { return NetProfitMargin(100, 0) }},
		{"OperatingMargin", func() (float64, error) { return OperatingMargin(150, 0) }},
		{"PayablesTurnover", func() (float64, error) { return PayablesTurnover(500, 0) }},
		{"QuickRatio", func() (float64, error) { return QuickRatio(300, 100, 0) }},
		{"ReceivablesTurnover", func() (float64, error) { return ReceivablesTurnover(1000, 0) }},
		{"RetentionRatio", func() (float64, error) { return RetentionRatio(0, 25) }},
		{"ReturnOnAssets", func() (float64, error) { return ReturnOnAssets(100, 0) }},
		{"ReturnOnEquity", func() (float64, error) { return ReturnOnEquity(100, 0) }},
		{"ReturnOnInvestment", func() (float64, error) { return ReturnOnInvestment(150, 0) }},
	}

	for _, c := range cases {
		_, err := c.got()
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), c.name)
	}
}
