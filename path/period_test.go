package path

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudy-native/lucid"
)

func seg(id string, length float64, axis lucid.Axis, num, den int64) lucid.Segment {
	return lucid.Segment{ID: id, Length: length, Axis: axis, Speed: lucid.MakeSpeed(num, den)}
}

func TestComputePeriod(t *testing.T) {
	type eg struct {
		name   string
		cfg    lucid.Configuration
		cycles int64
	}

	examples := []eg{
		{"unit speed", lucid.Configuration{seg("a", 3, lucid.AxisZ, 1, 1)}, 1},
		{"halves and thirds", lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 2), seg("b", 1, lucid.AxisY, 1, 3)}, 6},
		{"unreduced", lucid.Configuration{seg("a", 1, lucid.AxisX, 2, 4), seg("b", 1, lucid.AxisY, 3, 9)}, 6},
		{"negative numerator", lucid.Configuration{seg("a", 1, lucid.AxisX, -3, 4)}, 4},
		{"integer speeds", lucid.Configuration{seg("a", 1, lucid.AxisX, 5, 1), seg("b", 1, lucid.AxisZ, -7, 1)}, 1},
		{"original canvas", lucid.Configuration{
			seg("a", 1, lucid.AxisX, 1, 10),
			seg("b", 2, lucid.AxisY, 1, 7),
			seg("c", 0.5, lucid.AxisZ, 2, 5),
			seg("d", 1, lucid.AxisX, 3, 4),
		}, 140},
	}

	for _, x := range examples {
		p, err := ComputePeriod(x.cfg)
		require.NoError(t, err, x.name)
		assert.Equal(t, x.cycles, p.Cycles, x.name)
		assert.InDelta(t, 2*math.Pi*float64(x.cycles), p.Time, 1e-9, x.name)
	}
}

func TestComputePeriodUnitSpeed(t *testing.T) {
	for _, l := range []float64{-4, 0, 1, 17.5} {
		p, err := ComputePeriod(lucid.Configuration{seg("a", l, lucid.AxisY, 1, 1)})
		require.NoError(t, err)
		assert.InDelta(t, 2*math.Pi, p.Time, 1e-12)
	}
}

func TestComputePeriodHalvesAndThirds(t *testing.T) {
	p, err := ComputePeriod(lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 2), seg("b", 1, lucid.AxisZ, 1, 3)})
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Cycles)
	assert.InDelta(t, 12*math.Pi, p.Time, 1e-9)
}

func TestComputePeriodEmpty(t *testing.T) {
	for _, c := range []lucid.Configuration{nil, {}} {
		p, err := ComputePeriod(c)
		require.NoError(t, err)
		assert.Equal(t, FallbackPeriod, p.Time)
		assert.False(t, math.IsInf(p.Time, 0))
		assert.Greater(t, p.Time, 0.0)
	}
}

// Every segment must turn through a whole number of revolutions in one
// period.
func TestComputePeriodIsWholeRevolutions(t *testing.T) {
	speeds := [][2]int64{{1, 10}, {1, 7}, {2, 5}, {3, 4}, {-5, 6}, {7, 3}, {0, 9}, {4, 8}}

	c := lucid.Configuration{}
	for _, s := range speeds {
		c = c.Append(seg("", 1, lucid.AxisZ, s[0], s[1]))
	}

	p, err := ComputePeriod(c)
	require.NoError(t, err)

	for _, s := range c {
		revs := p.Time * s.Speed.Float() / (2 * math.Pi)
		assert.InDelta(t, math.Round(revs), revs, 1e-9, "speed %s turned %v revolutions", s.Speed, revs)
	}
}

func TestComputePeriodStationaryIsNeutral(t *testing.T) {
	c := lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 2), seg("b", 2, lucid.AxisY, 2, 5)}
	without, err := ComputePeriod(c)
	require.NoError(t, err)

	for _, den := range []int64{1, 3, 11, 1000} {
		with, err := ComputePeriod(c.Append(seg("s", 4, lucid.AxisZ, 0, den)))
		require.NoError(t, err)
		assert.Equal(t, without.Cycles, with.Cycles, "stationary segment with den %d", den)
	}
}

func TestComputePeriodInvalid(t *testing.T) {
	for _, den := range []int64{0, -1, -7} {
		_, err := ComputePeriod(lucid.Configuration{seg("a", 1, lucid.AxisX, 1, 2), seg("b", 1, lucid.AxisX, 1, den)})
		assert.True(t, errors.Is(err, lucid.ErrInvalidSegment), "den %d: got %v", den, err)
	}
}

func TestComputePeriodOverflow(t *testing.T) {
	c := lucid.Configuration{}
	for _, p := range []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41} {
		c = c.Append(seg("", 1, lucid.AxisX, 1, p))
	}

	_, err := ComputePeriod(c)
	assert.True(t, errors.Is(err, lucid.ErrCycleOverflow), "got %v", err)
}
