package guard

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestNonZero(t *testing.T) {
	assert.Nil(t, NonZero("rate", 0.05))
	assert.Nil(t, NonZero("rate", -0.05))

	err := NonZero("rate", 0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "rate")
}

func TestNonZeroInt(t *testing.T) {
	assert.Nil(t, NonZeroInt("months", 12))

	err := NonZeroInt("months", 0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "months")
}

func TestEqualLen(t *testing.T) {
	assert.Nil(t, EqualLen("values", "weights", 3, 3))

	err := EqualLen("values", "weights", 3, 2)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "weights")
}
