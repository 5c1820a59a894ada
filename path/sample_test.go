package path

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/math3d"
)

const epsilon = 1e-9

var approx = cmpopts.EquateApprox(0, 1e-9)

func canvas() lucid.Configuration {
	return lucid.Configuration{
		seg("a", 1, lucid.AxisX, 1, 10),
		seg("b", 2, lucid.AxisY, 1, 7),
		seg("c", 0.5, lucid.AxisZ, 2, 5),
		seg("d", 1, lucid.AxisX, 3, 4),
	}
}

func TestSampleCountAndClosure(t *testing.T) {
	configs := []lucid.Configuration{
		{seg("a", 1, lucid.AxisZ, 1, 1)},
		{seg("a", 1, lucid.AxisX, 1, 2), seg("b", 2, lucid.AxisZ, 1, 3)},
		{seg("a", 2, lucid.AxisY, -3, 4), seg("b", 1, lucid.AxisX, 5, 6), seg("c", 0.5, lucid.AxisZ, 0, 1)},
		canvas(),
	}

	for i, c := range configs {
		p, err := ComputePeriod(c)
		require.NoError(t, err)

		for _, n := range []int{1, 7, 1000} {
			points, err := Sample(c, p.Time, n)
			require.NoError(t, err)
			assert.Len(t, points, n+1)

			first, last := points[0], points[n]
			assert.InDelta(t, 0, first.Distance(last), 1e-6, "config %d with %d samples: %s != %s", i+1, n, first, last)
		}
	}
}

func TestSampleSingleSegment(t *testing.T) {
	c := lucid.Configuration{seg("a", 2, lucid.AxisZ, 1, 1)}
	points, err := Sample(c, 2*math.Pi, 4)
	require.NoError(t, err)

	exp := []math3d.Vector3{{X: 2}, {Y: 2}, {X: -2}, {Y: -2}, {X: 2}}
	if diff := cmp.Diff(exp, points, approx); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
}

func TestSampleTwoSegments(t *testing.T) {
	c := lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 1), seg("b", 2, lucid.AxisZ, 1, 2)}
	points, err := Sample(c, 4*math.Pi, 16)
	require.NoError(t, err)

	for i, p := range points {
		tt := 4 * math.Pi * float64(i) / 16
		a, b := tt, tt/2
		exp := math3d.Vector3{
			X: 1 + 2*math.Cos(b),
			Y: 2 * math.Sin(b) * math.Cos(a),
			Z: 2 * math.Sin(b) * math.Sin(a),
		}
		assert.InDelta(t, 0, p.Distance(exp), epsilon, "sample %d: got %s, expected %s", i, p, exp)
	}
}

func TestSampleOrderMatters(t *testing.T) {
	a := seg("a", 1, lucid.AxisX, 1, 1)
	b := seg("b", 2, lucid.AxisZ, 1, 2)

	p, err := ComputePeriod(lucid.Configuration{a, b})
	require.NoError(t, err)

	ab, err := Sample(lucid.Configuration{a, b}, p.Time, 100)
	require.NoError(t, err)
	ba, err := Sample(lucid.Configuration{b, a}, p.Time, 100)
	require.NoError(t, err)

	// Both start at the same place, since nothing has rotated yet.
	assert.InDelta(t, 0, ab[0].Distance(ba[0]), epsilon)

	differ := false
	for i := 1; i < 100; i++ {
		if ab[i].Distance(ba[i]) > 1e-6 {
			differ = true
			break
		}
	}
	assert.True(t, differ, "reordering segments didn't change the path")
}

func TestSampleNegativeLengthMirrors(t *testing.T) {
	pos := lucid.Configuration{seg("a", 1.5, lucid.AxisY, 1, 3), seg("b", 0.5, lucid.AxisX, 2, 1)}
	neg := lucid.Configuration{seg("a", -1.5, lucid.AxisY, 1, 3), seg("b", -0.5, lucid.AxisX, 2, 1)}

	p, err := ComputePeriod(pos)
	require.NoError(t, err)

	pp, err := Sample(pos, p.Time, 50)
	require.NoError(t, err)
	np, err := Sample(neg, p.Time, 50)
	require.NoError(t, err)

	// At t=0 the displacement is just the sum of the lengths along X.
	assert.InDelta(t, 0, pp[0].Distance(math3d.Vector3{X: 2}), epsilon)
	assert.InDelta(t, 0, np[0].Distance(math3d.Vector3{X: -2}), epsilon)

	mirrored := make([]math3d.Vector3, len(pp))
	for i, v := range pp {
		mirrored[i] = math3d.ZeroVector3.Subtract(v)
	}
	if diff := cmp.Diff(mirrored, np, approx); diff != "" {
		t.Errorf("negated lengths should mirror the path (-want +got):\n%s", diff)
	}
}

func TestSampleStationaryOnly(t *testing.T) {
	c := lucid.Configuration{seg("a", 1, lucid.AxisX, 0, 1), seg("b", 2, lucid.AxisZ, 0, 5)}
	p, err := ComputePeriod(c)
	require.NoError(t, err)

	points, err := Sample(c, p.Time, 10)
	require.NoError(t, err)
	for _, v := range points {
		assert.InDelta(t, 0, v.Distance(math3d.Vector3{X: 3}), epsilon)
	}
}

func TestSampleEmpty(t *testing.T) {
	points, err := Sample(nil, FallbackPeriod, 10)
	require.NoError(t, err)
	assert.Len(t, points, 11)
	for _, v := range points {
		assert.True(t, v.Zero())
	}
}

func TestSampleInvalidArguments(t *testing.T) {
	c := lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 1)}

	type eg struct {
		period float64
		n      int
	}

	examples := []eg{
		{0, 10},
		{-1, 10},
		{math.NaN(), 10},
		{2 * math.Pi, 0},
		{2 * math.Pi, -5},
		{2 * math.Pi, MaxSamples + 1},
	}

	for i, x := range examples {
		_, err := Sample(c, x.period, x.n)
		assert.True(t, errors.Is(err, lucid.ErrInvalidArgument), "example %d: got %v", i+1, err)
	}
}

func TestSampleInvalidSegment(t *testing.T) {
	c := lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 0)}
	_, err := Sample(c, 2*math.Pi, 10)
	assert.True(t, errors.Is(err, lucid.ErrInvalidSegment))
}

func TestTrace(t *testing.T) {
	r, err := Trace(canvas(), 1400)
	require.NoError(t, err)
	assert.Equal(t, int64(140), r.Period.Cycles)
	assert.Equal(t, 1400, r.Samples())
	assert.InDelta(t, r.Period.Time/1400, r.Step, epsilon)

	_, err = Trace(lucid.Configuration{seg("a", 1, lucid.AxisX, 1, -1)}, 10)
	assert.True(t, errors.Is(err, lucid.ErrInvalidSegment))
}

func TestClampSamples(t *testing.T) {
	assert.Equal(t, DefaultSamples, ClampSamples(0, 0))
	assert.Equal(t, 1, ClampSamples(-3, 0))
	assert.Equal(t, 500, ClampSamples(10000, 500))
	assert.Equal(t, MaxSamples, ClampSamples(MaxSamples*2, 0))
}

func TestSuggestSamples(t *testing.T) {
	assert.Equal(t, DefaultSamples, SuggestSamples(Period{Cycles: 1}, 1000, 0))
	assert.Equal(t, 140000, SuggestSamples(Period{Cycles: 140}, 1000, 0))
	assert.Equal(t, 50000, SuggestSamples(Period{Cycles: 140}, 1000, 50000))
	assert.Equal(t, MaxSamples, SuggestSamples(Period{Cycles: 1 << 30}, 1000, 0))
}
