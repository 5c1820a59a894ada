package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(6), GCD(12, 18))
	assert.Equal(t, int64(6), GCD(-12, 18))
	assert.Equal(t, int64(5), GCD(0, 5))
	assert.Equal(t, int64(1), GCD(7, 3))
}

func TestLCM(t *testing.T) {
	type eg struct {
		a, b int64
		exp  int64
		ok   bool
	}

	examples := []eg{
		{1, 1, 1, true},
		{2, 3, 6, true},
		{4, 6, 12, true},
		{-4, 6, 12, true},
		{0, 6, 0, true},
		{math.MaxInt64, 2, 0, false},
		{1 << 62, 3, 0, false},
	}

	for i, x := range examples {
		act, ok := LCM(x.a, x.b)
		assert.Equal(t, x.ok, ok, "example %d", i+1)
		if x.ok {
			assert.Equal(t, x.exp, act, "example %d", i+1)
		}
	}
}

func TestDeg(t *testing.T) {
	assert.InDelta(t, 180, Deg(math.Pi), 1e-12)
	assert.InDelta(t, -90, Deg(-math.Pi/2), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(1, 5, 10))
	assert.Equal(t, 10, Clamp(11, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))
}
