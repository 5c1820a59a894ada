package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitudeAndDistance(t *testing.T) {
	type eg struct {
		a, b Vector3
		exp  float64
	}

	examples := []eg{
		{Vector3{}, Vector3{}, 0},
		{Vector3{X: 3, Y: 4}, Vector3{}, 5},
		{Vector3{X: 1, Y: 2, Z: 3}, Vector3{X: 4, Y: 6, Z: 15}, 13},
		{Vector3{X: -1, Y: -1, Z: -1}, Vector3{X: 1, Y: 1, Z: 1}, 2 * math.Sqrt(3)},
	}

	for i, x := range examples {
		assert.InDelta(t, x.exp, x.a.Distance(x.b), 1e-12, "example %d", i+1)
		assert.InDelta(t, x.exp, x.b.Subtract(x.a).Magnitude(), 1e-12, "example %d", i+1)
	}
}

func TestMultiplyByMatrix44(t *testing.T) {
	m := MultiplyMatrices(MakeRotation(RotationBank, math.Pi/2), MakeTranslation(Vector3{X: 1, Y: 2, Z: 3}))

	// Rotate first, then translate.
	act := Vector3{X: 2}.MultiplyByMatrix44(m)
	assert.InDelta(t, 0, act.Distance(Vector3{X: 1, Y: 4, Z: 3}), 1e-12, "got %s", act)

	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, ZeroVector3.MultiplyByMatrix44(m))
	assert.Equal(t, Vector3{X: 5, Y: -6, Z: 7}, Vector3{X: 5, Y: -6, Z: 7}.MultiplyByMatrix44(Identity))
}

func TestVectorPredicates(t *testing.T) {
	assert.True(t, ZeroVector3.Zero())
	assert.False(t, Vector3{Z: 1e-300}.Zero())

	assert.True(t, Vector3{1, 2, 3}.Finite())
	assert.False(t, Vector3{math.NaN(), 0, 0}.Finite())
	assert.False(t, Vector3{0, math.Inf(-1), 0}.Finite())

	assert.Equal(t, [3]float64{1, 2, 3}, Vector3{1, 2, 3}.Array())
}
