package db

import (
	"context"
	"time"
)

// Store is the storage facade. Consumers depend on the narrow sub-interfaces.
type Store interface {
	Pinger
	KVStore
	CounterStore
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
// Get returns ErrKeyNotFound for a missing or expired key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CounterStore keeps integer counters that expire. IncrBy refreshes the TTL
// on every call and treats a missing key as 0.
type CounterStore interface {
	IncrBy(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error)
}

// ListStore keeps short newest-first lists of distinct strings.
// Range on a missing key returns an empty list, not an error.
type ListStore interface {
	PushUnique(ctx context.Context, key, value string, capacity int) error
	Range(ctx context.Context, key string, limit int) ([]string, error)
}
