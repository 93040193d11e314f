package portfolio

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestWeightedAverage(t *testing.T) {
	pairs := []WeightedValue{
		{Weight: 0.5, Value: 100},
		{Weight: 0.5, Value: 200},
	}
	assert.InDelta(t, 150.0, WeightedAverage(pairs), eps)

	// permuting the pairs leaves the sum unchanged
	permuted := []WeightedValue{pairs[1], pairs[0]}
	assert.InDelta(t, WeightedAverage(pairs), WeightedAverage(permuted), eps)

	assert.InDelta(t, 0.0, WeightedAverage(nil), eps)

	assert.InDelta(t, 150.0, ExpectedReturn(pairs), eps)
}

func TestWeightedMean(t *testing.T) {
	v, err := WeightedMean([]float64{80, 90}, []float64{2, 3})
	assert.Nil(t, err)
	assert.InDelta(t, 86.0, v, eps)

	_, err = WeightedMean([]float64{80, 90}, []float64{2})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = WeightedMean([]float64{80, 90}, []float64{1, -1})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestGeometricMeanReturn(t *testing.T) {
	v, err := GeometricMeanReturn([]float64{0.1, 0.2, 0.3})
	assert.Nil(t, err)
	assert.InDelta(t, 0.1972157672583763, v, eps)

	_, err = GeometricMeanReturn(nil)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestHoldingPeriodReturn(t *testing.T) {
	assert.InDelta(t, 0.716, HoldingPeriodReturn([]float64{0.1, 0.2, 0.3}), eps)
	assert.InDelta(t, 0.0, HoldingPeriodReturn(nil), eps)
}

func TestRealRateOfReturn(t *testing.T) {
	v, err := RealRateOfReturn(0.08, 0.03)
	assert.Nil(t, err)
	assert.InDelta(t, 0.04854368932038833, v, eps)

	_, err = RealRateOfReturn(0.08, -1)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}
