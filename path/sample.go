package path

import (
	"fmt"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/math3d"
	"github.com/cloudy-native/lucid/utils"
)

const (

	// The number of samples which a path gets when the caller doesn't say. This
	// is plenty for a smooth tube at typical cycle counts, but configurations
	// with large cycle counts will look faceted.
	DefaultSamples = 10000

	// The most samples which will be taken for one path. Each sample is 24
	// bytes, so this caps a path at about 24MB.
	MaxSamples = 1000000
)

// rotations maps each world axis to the matrix rotation about it.
var rotations = map[lucid.Axis]math3d.Rotation{
	lucid.AxisX: math3d.RotationPitch,
	lucid.AxisY: math3d.RotationHeading,
	lucid.AxisZ: math3d.RotationBank,
}

// Sample returns n+1 points along the curve traced by the end of the chain,
// evenly spaced in time from zero to period inclusive. When period came from
// ComputePeriod, the first and last points coincide.
func Sample(c lucid.Configuration, period float64, n int) ([]math3d.Vector3, error) {
	if !(period > 0) {
		return nil, fmt.Errorf("%w: period must be positive, got %v", lucid.ErrInvalidArgument, period)
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", lucid.ErrInvalidArgument, n)
	}

	if n > MaxSamples {
		return nil, fmt.Errorf("%w: sample count must be at most %d, got %d", lucid.ErrInvalidArgument, MaxSamples, n)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Convert the speeds once, rather than once per sample.
	speeds := make([]float64, len(c))
	for i, s := range c {
		speeds[i] = s.Speed.Float()
	}

	points := make([]math3d.Vector3, n+1)
	for i := 0; i <= n; i++ {

		// Compute each time from the index rather than accumulating a step, so
		// the last sample lands exactly on the period.
		t := period * float64(i) / float64(n)

		p := at(c, speeds, t)
		if !p.Finite() {
			return nil, fmt.Errorf("%w: sample %d at t=%v is not finite", lucid.ErrInvalidArgument, i, t)
		}

		points[i] = p
	}

	return points, nil
}

// at returns the position of the end of the chain at time t: the chain's
// local origin carried through its transform. speeds holds the float speed of
// each segment.
func at(c lucid.Configuration, speeds []float64, t float64) math3d.Vector3 {
	return math3d.ZeroVector3.MultiplyByMatrix44(transform(c, speeds, t))
}

// transform returns the composed transform of the whole chain at time t.
//
// Each segment rotates about its axis, and then translates along its own
// (rotated) X axis. Matrices here act on row vectors, so the segment's local
// transform goes on the left of everything which came before it. That's the
// same as the parent-first composition used to find the end of a limb.
func transform(c lucid.Configuration, speeds []float64, t float64) math3d.Matrix44 {
	m := math3d.Identity

	for i, s := range c {
		rot := math3d.MakeRotation(rotations[s.Axis], speeds[i]*t)
		m = math3d.MultiplyMatrices(rot, m)

		tr := math3d.MakeTranslation(math3d.Vector3{X: s.Length})
		m = math3d.MultiplyMatrices(tr, m)
	}

	return m
}

// ClampSamples returns n constrained to [1, max]. Zero means DefaultSamples.
func ClampSamples(n, max int) int {
	if n == 0 {
		n = DefaultSamples
	}

	if max <= 0 || max > MaxSamples {
		max = MaxSamples
	}

	return utils.Clamp(n, 1, max)
}

// SuggestSamples returns a sample count which gives every cycle of the period
// perCycle samples, constrained to [DefaultSamples, max]. The default policy is
// still a fixed count; this is for callers which would rather trade time for
// fidelity on configurations with large cycle counts.
func SuggestSamples(p Period, perCycle, max int) int {
	n := int64(perCycle) * p.Cycles
	if n > int64(MaxSamples) {
		n = int64(MaxSamples)
	}

	return ClampSamples(utils.Clamp(int(n), DefaultSamples, MaxSamples), max)
}
