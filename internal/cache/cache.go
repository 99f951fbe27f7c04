// Package cache is a typed, TTL-backed in-memory cache shared by components
// that need an explicitly constructed cache instance.
package cache

import (
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// NoExpiration stores an item until it is deleted.
const NoExpiration = gocache.NoExpiration

// Manager caches values of type V under string keys.
type Manager[V any] struct {
	useCase string
	cache   *gocache.Cache
	logger  *slog.Logger
}

// New creates a cache for useCase. Zero durations fall back to the defaults.
func New[V any](useCase string, defaultExpiration, cleanupInterval time.Duration, logger *slog.Logger) *Manager[V] {
	if defaultExpiration == 0 {
		defaultExpiration = DefaultExpiration
	}
	if cleanupInterval == 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
		logger:  logger,
	}
}

// Get returns the value stored under key.
func (m *Manager[V]) Get(key string) (V, bool) {
	var zero V

	value, found := m.cache.Get(key)
	if !found {
		return zero, false
	}
	v, ok := value.(V)
	if !ok {
		m.logger.Error("cache: wrong type for key", "use_case", m.useCase, "key", key)
		return zero, false
	}
	m.logger.Debug("cache hit", "use_case", m.useCase, "key", key)
	return v, true
}

// GetWithRefresh returns the value under key and, if found, stores it again
// with a fresh ttl.
func (m *Manager[V]) GetWithRefresh(key string, ttl time.Duration) (V, bool) {
	v, found := m.Get(key)
	if found {
		m.Set(key, v, ttl)
	}
	return v, found
}

// Has reports whether key holds an unexpired value.
func (m *Manager[V]) Has(key string) bool {
	_, found := m.Get(key)
	return found
}

// Set stores value under key. A ttl of 0 uses the cache's default expiration.
func (m *Manager[V]) Set(key string, value V, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

// Delete removes keys. Missing keys are ignored.
func (m *Manager[V]) Delete(keys ...string) {
	for _, key := range keys {
		m.cache.Delete(key)
	}
}

// Clear removes every item.
func (m *Manager[V]) Clear() { m.cache.Flush() }

// Len returns the number of stored items, including expired ones not yet
// cleaned up.
func (m *Manager[V]) Len() int { return m.cache.ItemCount() }

// UseCase returns the name the cache was created with.
func (m *Manager[V]) UseCase() string { return m.useCase }
