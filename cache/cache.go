// Package cache holds computed paths so that popular share links aren't
// resampled on every request. Sampling is deterministic, so entries never go
// stale; the TTL only bounds memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/path"
	"github.com/cloudy-native/lucid/share"
)

// ErrMiss is returned by Get when there is no entry for the key.
var ErrMiss = errors.New("cache miss")

var log = logrus.WithFields(logrus.Fields{
	"pkg": "cache",
})

// Cache is a byte store keyed by string.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrMiss
}

func (Nop) Set(ctx context.Context, key string, value []byte) error {
	return nil
}

// Traces wraps a Cache with path.Trace.
type Traces struct {
	cache Cache
}

func NewTraces(c Cache) *Traces {
	if c == nil {
		c = Nop{}
	}

	return &Traces{cache: c}
}

// Key returns the cache key for n samples of the configuration.
func Key(c lucid.Configuration, n int) string {
	return fmt.Sprintf("%s:%d", share.Key(c), n)
}

// Trace returns the sampled path, from the cache if possible. The second
// return value is true on a cache hit. Cache failures are logged and the path
// is computed as if it had missed.
func (t *Traces) Trace(ctx context.Context, c lucid.Configuration, n int) (*path.Result, bool, error) {
	key := Key(c, n)

	data, err := t.cache.Get(ctx, key)
	if err == nil {
		var r path.Result
		if err := json.Unmarshal(data, &r); err == nil {
			return &r, true, nil
		}
		log.Warnf("discarding unreadable entry %s", key)
	} else if !errors.Is(err, ErrMiss) {
		log.Warnf("get %s: %s", key, err)
	}

	r, err := path.Trace(c, n)
	if err != nil {
		return nil, false, err
	}

	data, err = json.Marshal(r)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal path: %w", err)
	}

	if err := t.cache.Set(ctx, key, data); err != nil {
		log.Warnf("set %s: %s", key, err)
	}

	return r, false, nil
}
