package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is an in-process LRU cache. It is safe for concurrent use.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemory returns a cache which holds at most size entries, each for at most
// ttl. A ttl of zero means entries are only evicted by size.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size < 1 {
		size = 1
	}

	return &Memory{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrMiss
	}

	return v, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.lru.Add(key, value)
	return nil
}

// Len returns the number of entries held.
func (m *Memory) Len() int {
	return m.lru.Len()
}
