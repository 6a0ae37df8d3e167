package replycache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/db"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
)

type mockPhraser struct {
	msg   string
	err   error
	calls int
}

func (m *mockPhraser) Phrase(_ context.Context, _ string, _ intent.Reply) (string, error) {
	m.calls++
	return m.msg, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedPhraser(t *testing.T, inner *mockPhraser) (*CachedPhraser, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	cp := New(inner, ms, "wr:", time.Hour, nil, zap.NewNop())
	return cp, ms
}
