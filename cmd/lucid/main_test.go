package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/share"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseStateYAML(t *testing.T) {
	st, err := parseState([]byte(`
segments:
  - length: 1
    axis: X
    speed: 1/3
  - length: 0.5
    axis: z
    speed: {num: -2, den: 5}
environment: forest
`))
	require.NoError(t, err)
	require.Len(t, st.Segments, 2)
	assert.Equal(t, lucid.AxisX, st.Segments[0].Axis)
	assert.Equal(t, lucid.MakeSpeed(1, 3), st.Segments[0].Speed)
	assert.Equal(t, lucid.MakeSpeed(-2, 5), st.Segments[1].Speed)
	assert.Equal(t, "forest", st.Environment)
	assert.Equal(t, share.DefaultMaterial, st.Material)
}

func TestDecodeCode(t *testing.T) {
	s := share.DefaultState()
	code, err := share.Encode(s)
	require.NoError(t, err)
	link, err := share.URL("https://example.com/", s)
	require.NoError(t, err)

	for _, c := range []string{code, link} {
		act, err := decodeCode(c)
		require.NoError(t, err)
		assert.Equal(t, s, act)
	}

	_, err = decodeCode("https://example.com/?other=1")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describe(&buf, termenv.Ascii, share.DefaultState()))

	out := buf.String()
	assert.Contains(t, out, "4 segments")
	assert.Contains(t, out, "speed 3/4")
	assert.Contains(t, out, "cycles 140")
	assert.NotContains(t, out, "\x1b[")
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "", "path", "--format", "csv", "--samples", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "x,y,z", lines[0])
	assert.Len(t, lines, 6)
}

func TestShareEncodeDecodeCommands(t *testing.T) {
	out, err := run(t, `{"segments":[{"length":2,"axis":"y","speed":"1/2"}],"material":"neon"}`, "share", "encode", "--code")
	require.NoError(t, err)
	code := strings.TrimSpace(out)

	out, err = run(t, "", "share", "decode", code)
	require.NoError(t, err)
	assert.Contains(t, out, "material: neon")
	assert.Contains(t, out, "length: 2")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "Lucid Geometry version "+lucid.Version+"\n", out)
}
