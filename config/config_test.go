package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lucid.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
listen: ":9000"
log:
  level: debug
samples:
  default: 500
cache:
  backend: redis
  ttl: 10m
redis:
  addr: redis:6379
  db: "2"
`), 0o644))

	act, err := Load(file)
	require.NoError(t, err)

	exp := Default()
	exp.Listen = ":9000"
	exp.Log.Level = "debug"
	exp.Samples.Default = 500
	exp.Cache.Backend = CacheRedis
	exp.Cache.TTL = 10 * time.Minute
	exp.Redis.Addr = "redis:6379"
	exp.Redis.DB = 2

	if diff := cmp.Diff(exp, act); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	type eg struct {
		name string
		yaml string
	}

	examples := []eg{
		{"not yaml", "listen: [unterminated"},
		{"unknown key", "lisen: :80"},
		{"bad duration", "cache:\n  ttl: soon"},
		{"too many samples", "samples:\n  max: 2000000"},
		{"default above max", "samples:\n  default: 100\n  max: 10"},
		{"unknown backend", "cache:\n  backend: memcached"},
		{"zero size", "cache:\n  size: 0"},
	}

	for _, x := range examples {
		_, err := Parse([]byte(x.yaml))
		assert.Error(t, err, x.name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
