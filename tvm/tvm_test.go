package tvm

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestPresentValue(t *testing.T) {
	v, err := PresentValue(1000, 0.05, 10)
	assert.Nil(t, err)
	assert.InDelta(t, 613.9132535407591, v, eps)

	_, err = PresentValue(1000, -1, 10)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestPresentValueFactor(t *testing.T) {
	v, err := PresentValueFactor(0.08, 5)
	assert.Nil(t, err)
	assert.InDelta(t, 0.6805831970337529, v, eps)

	_, err = PresentValueFactor(-1, 5)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestFutureValue(t *testing.T) {
	assert.InDelta(t, 1628.894626777442, FutureValue(1000, 0.05, 10), eps)
	assert.InDelta(t, 1.0, FutureValueFactor(0.05, 0), eps)
	assert.InDelta(t, 1906.8737254821071, FutureValueContinuousCompounding(1500, 0.08, 3), eps)
}

func TestNetPresentValue(t *testing.T) {
	v, err := NetPresentValue(100, []float64{100, 200, 300}, 0.5)
	assert.Nil(t, err)
	assert.InDelta(t, 144.44444444444443, v, eps)

	// the discount exponent follows index position, so order matters
	permuted, err := NetPresentValue(100, []float64{300, 200, 100}, 0.5)
	assert.Nil(t, err)
	assert.InDelta(t, 218.5185185185185, permuted, eps)
	assert.NotEqual(t, v, permuted)

	empty, err := NetPresentValue(100, nil, 0.5)
	assert.Nil(t, err)
	assert.InDelta(t, -100.0, empty, eps)

	_, err = NetPresentValue(100, []float64{100}, -1)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestNumberOfPeriods(t *testing.T) {
	v, err := NumberOfPeriods(2000, 1000, 0.07)
	assert.Nil(t, err)
	assert.InDelta(t, 10.244768351058712, v, eps)

	_, err = NumberOfPeriods(2000, 0, 0.07)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = NumberOfPeriods(2000, 1000, 0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}
