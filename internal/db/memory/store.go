// Package memory is an in-process db.Store for local runs and the CLI.
// Contents do not survive a restart.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/kailas-cloud/wainnrooh/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

type item struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Store is a mutex-guarded map with lazy TTL eviction. Lists live in their
// own keyspace; Del removes a key from both.
type Store struct {
	mu     sync.RWMutex
	items  map[string]item
	lists  map[string][]string
	closed bool
	now    func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items: make(map[string]item),
		lists: make(map[string][]string),
		now:   time.Now,
	}
}

// Ping reports whether the store is open.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return &db.Error{Op: db.OpPing, Err: db.ErrClosed}
	}
	return nil
}

// Get returns a copy of the stored value.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, &db.Error{Op: db.OpGet, Err: db.ErrClosed}
	}
	it, ok := s.items[key]
	if !ok || s.expired(it) {
		return nil, db.ErrKeyNotFound
	}
	return append([]byte(nil), it.value...), nil
}

// Set stores a copy of value without expiry.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	return s.put(key, value, time.Time{})
}

// SetWithTTL stores a copy of value that disappears after ttl.
func (s *Store) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return s.put(key, value, time.Time{})
	}
	return s.put(key, value, s.now().Add(ttl))
}

// Del removes a key. Deleting a missing key is not an error.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &db.Error{Op: db.OpDel, Err: db.ErrClosed}
	}
	delete(s.items, key)
	delete(s.lists, key)
	return nil
}

// IncrBy adds delta to the decimal counter at key and restarts its TTL.
func (s *Store) IncrBy(_ context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, &db.Error{Op: db.OpIncrBy, Err: db.ErrClosed}
	}

	var cur int64
	if it, ok := s.items[key]; ok && !s.expired(it) {
		n, err := strconv.ParseInt(string(it.value), 10, 64)
		if err != nil {
			return 0, &db.Error{Op: db.OpIncrBy, Err: fmt.Errorf("value is not an integer: %w", err)}
		}
		cur = n
	}

	next := cur + delta
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}
	s.items[key] = item{value: []byte(strconv.FormatInt(next, 10)), expiresAt: expiresAt}
	return next, nil
}

// PushUnique moves value to the head of the list and trims it to capacity.
func (s *Store) PushUnique(_ context.Context, key, value string, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &db.Error{Op: db.OpPushUnique, Err: db.ErrClosed}
	}
	if capacity <= 0 {
		return &db.Error{Op: db.OpPushUnique, Err: errors.New("capacity must be positive")}
	}

	old := s.lists[key]
	next := make([]string, 0, min(len(old)+1, capacity))
	next = append(next, value)
	for _, v := range old {
		if len(next) == capacity {
			break
		}
		if v != value {
			next = append(next, v)
		}
	}
	s.lists[key] = next
	return nil
}

// Range returns a copy of up to limit head elements. limit <= 0 returns all.
func (s *Store) Range(_ context.Context, key string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, &db.Error{Op: db.OpRange, Err: db.ErrClosed}
	}
	list := s.lists[key]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return append([]string{}, list...), nil
}

// Close drops all data; later calls fail with db.ErrClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.items = nil
	s.lists = nil
}

// WaitForReady returns immediately: an open in-memory store is always ready.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

func (s *Store) put(key string, value []byte, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &db.Error{Op: db.OpSet, Err: db.ErrClosed}
	}
	s.items[key] = item{value: append([]byte(nil), value...), expiresAt: expiresAt}
	return nil
}

func (s *Store) expired(it item) bool {
	return !it.expiresAt.IsZero() && !s.now().Before(it.expiresAt)
}
