package rate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPercentage(t *testing.T) {
	assert.Equal(t, 2.5288456983290075, ToPercentage(0.025288456983290075))
	assert.Equal(t, -5.0, ToPercentage(-0.05))
	assert.Equal(t, 0.0, ToPercentage(0))
}

func TestFromPercentage(t *testing.T) {
	assert.Equal(t, 0.05, FromPercentage(5))
	assert.Equal(t, -0.05, FromPercentage(-5))
}

func TestToBasisPoints(t *testing.T) {
	assert.Equal(t, 250.0, ToBasisPoints(0.025))
	assert.Equal(t, 0.0, ToBasisPoints(0))
}
