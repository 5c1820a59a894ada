package lucid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduced(t *testing.T) {
	type eg struct {
		in  Speed
		out Speed
	}

	examples := []eg{
		{Speed{1, 1}, Speed{1, 1}},
		{Speed{2, 4}, Speed{1, 2}},
		{Speed{-6, 9}, Speed{-2, 3}},
		{Speed{6, -9}, Speed{-2, 3}},
		{Speed{0, 7}, Speed{0, 1}},
		{Speed{12, 5}, Speed{12, 5}},
	}

	for i, x := range examples {
		assert.Equal(t, x.out, x.in.Reduced(), "example %d", i+1)
	}
}

func TestSpeedFloat(t *testing.T) {
	assert.InDelta(t, 0.4, MakeSpeed(2, 5).Float(), 1e-12)
	assert.InDelta(t, -0.75, MakeSpeed(-3, 4).Float(), 1e-12)
	assert.True(t, MakeSpeed(0, 3).Stationary())
	assert.False(t, MakeSpeed(1, 3).Stationary())
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("X")
	assert.NoError(t, err)
	assert.Equal(t, AxisX, a)

	a, err = ParseAxis(" z ")
	assert.NoError(t, err)
	assert.Equal(t, AxisZ, a)

	_, err = ParseAxis("w")
	assert.Error(t, err)
}

func TestSegmentValidate(t *testing.T) {
	type eg struct {
		seg   Segment
		valid bool
	}

	examples := []eg{
		{Segment{Length: 1, Axis: AxisX, Speed: Speed{1, 1}}, true},
		{Segment{Length: -2, Axis: AxisY, Speed: Speed{-3, 7}}, true},
		{Segment{Length: 0, Axis: AxisZ, Speed: Speed{0, 1}}, true},
		{Segment{Length: 1, Axis: AxisX, Speed: Speed{1, 0}}, false},
		{Segment{Length: 1, Axis: AxisX, Speed: Speed{1, -2}}, false},
		{Segment{Length: 1, Axis: "w", Speed: Speed{1, 1}}, false},
		{Segment{Length: math.NaN(), Axis: AxisX, Speed: Speed{1, 1}}, false},
		{Segment{Length: math.Inf(1), Axis: AxisX, Speed: Speed{1, 1}}, false},
	}

	for i, x := range examples {
		err := x.seg.Validate()
		if x.valid {
			assert.NoError(t, err, "example %d", i+1)
		} else {
			assert.True(t, errors.Is(err, ErrInvalidSegment), "example %d: got %v", i+1, err)
		}
	}
}
