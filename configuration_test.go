package lucid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() Configuration {
	return Configuration{
		{ID: "a", Length: 1, Axis: AxisX, Speed: Speed{1, 10}},
		{ID: "b", Length: 2, Axis: AxisY, Speed: Speed{1, 7}},
		{ID: "c", Length: 0.5, Axis: AxisZ, Speed: Speed{2, 5}},
	}
}

func TestConfigurationValidate(t *testing.T) {
	c := testConfiguration()
	assert.NoError(t, c.Validate())
	assert.NoError(t, Configuration{}.Validate())

	c[1].Speed.Den = 0
	err := c.Validate()
	assert.True(t, errors.Is(err, ErrInvalidSegment))
	assert.Contains(t, err.Error(), "segment 1 (b)")
}

func TestConfigurationEditsDoNotMutate(t *testing.T) {
	c := testConfiguration()

	appended := c.Append(Segment{ID: "d", Length: 1, Axis: AxisX, Speed: Speed{3, 4}})
	assert.Len(t, c, 3)
	assert.Len(t, appended, 4)

	updated, err := c.Update(Segment{ID: "b", Length: 9, Axis: AxisZ, Speed: Speed{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated[1].Length)
	assert.Equal(t, 2.0, c[1].Length)

	removed := c.Remove("a")
	assert.Equal(t, []string{"b", "c"}, []string{removed[0].ID, removed[1].ID})
	assert.Equal(t, "a", c[0].ID)

	_, err = c.Update(Segment{ID: "nope"})
	assert.Error(t, err)
}

func TestConfigurationClone(t *testing.T) {
	c := testConfiguration()
	cc := c.Clone()
	cc[0].Length = 100
	assert.Equal(t, 1.0, c[0].Length)
	assert.Nil(t, Configuration(nil).Clone())
	assert.Equal(t, 2, c.Index("c"))
	assert.Equal(t, -1, c.Index("zzz"))
}
