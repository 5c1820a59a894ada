// Package config loads server and CLI settings from a YAML file. Anything the
// file leaves out keeps its default.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/cloudy-native/lucid/path"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	Listen  string  `mapstructure:"listen"`
	BaseURL string  `mapstructure:"base_url"`
	Log     Log     `mapstructure:"log"`
	Samples Samples `mapstructure:"samples"`
	Cache   Cache   `mapstructure:"cache"`
	Redis   Redis   `mapstructure:"redis"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Samples struct {
	Default int `mapstructure:"default"`
	Max     int `mapstructure:"max"`
}

type Cache struct {
	Backend string        `mapstructure:"backend"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

func Default() Config {
	return Config{
		Listen:  ":8080",
		BaseURL: "https://lucidgeometry.com/",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Samples: Samples{
			Default: path.DefaultSamples,
			Max:     path.MaxSamples,
		},
		Cache: Cache{
			Backend: CacheMemory,
			Size:    256,
			TTL:     time.Hour,
		},
		Redis: Redis{
			Addr:   "localhost:6379",
			Prefix: "lucid:path:",
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse reads YAML over the defaults, and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &c,
	})
	if err != nil {
		return Config{}, err
	}

	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Samples.Max < 1 || c.Samples.Max > path.MaxSamples {
		errs = append(errs, fmt.Errorf("samples.max must be between 1 and %d, got %d", path.MaxSamples, c.Samples.Max))
	}

	if c.Samples.Default < 1 || c.Samples.Default > c.Samples.Max {
		errs = append(errs, fmt.Errorf("samples.default must be between 1 and samples.max, got %d", c.Samples.Default))
	}

	switch c.Cache.Backend {
	case CacheMemory:
		if c.Cache.Size < 1 {
			errs = append(errs, fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size))
		}
	case CacheRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is required by the redis cache"))
		}
	case CacheNone:
	default:
		errs = append(errs, fmt.Errorf("unknown cache.backend %q", c.Cache.Backend))
	}

	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL))
	}

	return errors.Join(errs...)
}
