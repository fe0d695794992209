package cache

import (
	"context"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
)

const opTimeout = 1 * time.Second

type Manager[T any] struct {
	cache *cache.Cache[T]
}

// NewManager keeps entries for ttl unless a call sets its own expiration.
func NewManager[T any](ttl time.Duration) *Manager[T] {
	client := gocache.New(ttl, ttl)
	return &Manager[T]{
		cache: cache.New[T](go_cache.NewGoCache(client)),
	}
}

func (m *Manager[T]) Set(key string, value T) error {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.cache.Set(timeout, key, value)
}

func (m *Manager[T]) SetWithExpiration(key string, value T, expir time.Duration) error {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.cache.Set(timeout, key, value, store.WithExpiration(expir))
}

// GetValue returns the zero value and a nil error for a missing key.
func (m *Manager[T]) GetValue(key string) (value T, err error) {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	const errorMessage = "value not found"
	value, err = m.cache.Get(timeout, key)
	if err != nil && strings.Contains(err.Error(), errorMessage) {
		err = nil
		return
	}
	return
}

func (m *Manager[T]) Delete(key string) error {
	timeout, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.cache.Delete(timeout, key)
}
