package budget

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/wainnrooh/internal/db"
	"github.com/kailas-cloud/wainnrooh/internal/db/memory"
)

type ttlRecorder struct {
	*memory.Store
	ttls map[string]time.Duration
}

func (r *ttlRecorder) IncrBy(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	r.ttls[key] = ttl
	return r.Store.IncrBy(ctx, key, delta, ttl)
}

func TestStore_IncrByAndGet(t *testing.T) {
	rec := &ttlRecorder{Store: memory.NewStore(), ttls: map[string]time.Duration{}}
	s := New(rec, 48*time.Hour, 62*24*time.Hour)
	ctx := context.Background()

	daily := "wainnrooh:budget:assistant:daily:2026-10-18"
	monthly := "wainnrooh:budget:assistant:monthly:2026-10"

	if got, err := s.Get(ctx, daily); err != nil || got != 0 {
		t.Fatalf("Get missing = %d, %v", got, err)
	}
	for range 3 {
		if err := s.IncrBy(ctx, daily, 1); err != nil {
			t.Fatalf("IncrBy: %v", err)
		}
	}
	if err := s.IncrBy(ctx, monthly, 5); err != nil {
		t.Fatalf("IncrBy: %v", err)
	}

	if got, _ := s.Get(ctx, daily); got != 3 {
		t.Errorf("daily = %d, want 3", got)
	}
	if got, _ := s.Get(ctx, monthly); got != 5 {
		t.Errorf("monthly = %d, want 5", got)
	}
	if rec.ttls[daily] != 48*time.Hour {
		t.Errorf("daily ttl = %v", rec.ttls[daily])
	}
	if rec.ttls[monthly] != 62*24*time.Hour {
		t.Errorf("monthly ttl = %v", rec.ttls[monthly])
	}
}

func TestStore_GetCorrupt(t *testing.T) {
	m := memory.NewStore()
	ctx := context.Background()
	if err := m.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatal(err)
	}

	s := New(m, time.Hour, time.Hour)
	if _, err := s.Get(ctx, "k"); err == nil {
		t.Fatal("expected parse error")
	}
	if err := s.IncrBy(ctx, "k", 1); err == nil {
		t.Fatal("expected IncrBy to surface the parse error")
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, db.ErrClosed
}

func (failingStore) IncrBy(context.Context, string, int64, time.Duration) (int64, error) {
	return 0, db.ErrClosed
}

func TestStore_StoreError(t *testing.T) {
	s := New(failingStore{}, time.Hour, time.Hour)
	if _, err := s.Get(context.Background(), "k"); !errors.Is(err, db.ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	if err := s.IncrBy(context.Background(), "k", 1); !errors.Is(err, db.ErrClosed) {
		t.Errorf("IncrBy err = %v, want ErrClosed", err)
	}
}

func TestStore_ConcurrentIncrementsAreNotLost(t *testing.T) {
	s := New(memory.NewStore(), time.Hour, time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.IncrBy(ctx, "wainnrooh:budget:assistant:daily:2026-10-18", 1)
		}()
	}
	wg.Wait()

	if got, _ := s.Get(ctx, "wainnrooh:budget:assistant:daily:2026-10-18"); got != 20 {
		t.Errorf("counter = %d, want 20", got)
	}
}
