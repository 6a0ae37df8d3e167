package intent

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
)

type mockBudgetStore struct {
	mu     sync.Mutex
	values map[string]int64
	getErr error
}

func newMockBudgetStore() *mockBudgetStore {
	return &mockBudgetStore{values: map[string]int64{}}
}

func (m *mockBudgetStore) IncrBy(_ context.Context, key string, val int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] += val
	return nil
}

func (m *mockBudgetStore) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.values[key], nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestBudget(inner Phraser, store BudgetStore, daily, monthly int64, now time.Time) *BudgetedPhraser {
	b := NewBudgetedPhraser(inner, store, "t:", daily, monthly, zap.NewNop())
	b.now = fixedClock(now)
	b.lastDayReset = truncateToDay(now)
	b.lastMonthReset = truncateToMonth(now)
	return b
}

func TestBudgetedPhraser_DailyLimit(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store := newMockBudgetStore()
	inner := &mockPhraser{msg: "أهلاً"}
	b := newTestBudget(inner, store, 2, 0, now)

	for i := range 2 {
		if _, err := b.Phrase(context.Background(), "q", intent.Reply{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	_, err := b.Phrase(context.Background(), "q", intent.Reply{})
	if !errors.Is(err, domain.ErrAssistantUnavailable) {
		t.Fatalf("err = %v, want ErrAssistantUnavailable", err)
	}

	if got := store.values["t:budget:assistant:daily:2026-10-18"]; got != 2 {
		t.Errorf("persisted daily = %d, want 2", got)
	}
	if got := store.values["t:budget:assistant:monthly:2026-10"]; got != 2 {
		t.Errorf("persisted monthly = %d, want 2", got)
	}
	if d, m := b.Remaining(); d != 0 || m != -1 {
		t.Errorf("Remaining = %d, %d; want 0, -1", d, m)
	}
}

func TestBudgetedPhraser_FailedCallsAreFree(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	b := newTestBudget(&mockPhraser{err: errors.New("boom")}, nil, 1, 1, now)

	for range 3 {
		_, err := b.Phrase(context.Background(), "q", intent.Reply{})
		if errors.Is(err, domain.ErrAssistantUnavailable) {
			t.Fatal("failed calls must not spend budget")
		}
	}
	if d, m := b.Remaining(); d != 1 || m != 1 {
		t.Errorf("Remaining = %d, %d; want 1, 1", d, m)
	}
}

func TestBudgetedPhraser_ResetsOnNewDay(t *testing.T) {
	day := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)
	b := newTestBudget(&mockPhraser{msg: "x"}, nil, 1, 5, day)

	if _, err := b.Phrase(context.Background(), "q", intent.Reply{}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Phrase(context.Background(), "q", intent.Reply{}); err == nil {
		t.Fatal("expected daily budget to be spent")
	}

	b.now = fixedClock(day.Add(2 * time.Hour))
	if _, err := b.Phrase(context.Background(), "q", intent.Reply{}); err != nil {
		t.Fatalf("after midnight: %v", err)
	}
	if d, m := b.Remaining(); d != 0 || m != 3 {
		t.Errorf("Remaining = %d, %d; want 0, 3", d, m)
	}
}

func TestBudgetedPhraser_MonthlyLimit(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store := newMockBudgetStore()
	store.values["t:budget:assistant:monthly:2026-10"] = 10
	inner := &mockPhraser{msg: "x"}
	b := newTestBudget(inner, store, 0, 10, now)
	b.Load(context.Background())

	_, err := b.Phrase(context.Background(), "q", intent.Reply{})
	if !errors.Is(err, domain.ErrAssistantUnavailable) {
		t.Fatalf("err = %v, want ErrAssistantUnavailable", err)
	}
	if inner.called {
		t.Error("inner phraser must not be called once the budget is spent")
	}
}

func TestBudgetedPhraser_LoadErrorKeepsZero(t *testing.T) {
	store := newMockBudgetStore()
	store.getErr = errors.New("down")
	b := newTestBudget(&mockPhraser{msg: "x"}, store, 3, 0, time.Now())
	b.Load(context.Background())

	if d, _ := b.Remaining(); d != 3 {
		t.Errorf("daily remaining = %d, want 3", d)
	}
}

func TestBudgetedPhraser_SpentFallsBackInService(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	inner := &mockPhraser{msg: "رد مصاغ"}
	b := newTestBudget(inner, nil, 1, 0, now)
	svc := New(&mockCatalog{idx: index.Build(applyFixture())}, b)

	first, err := svc.Ask(context.Background(), "مطعم")
	if err != nil {
		t.Fatal(err)
	}
	if first.Message != "رد مصاغ" {
		t.Fatalf("first message = %q", first.Message)
	}

	second, err := svc.Ask(context.Background(), "مطعم")
	if err != nil {
		t.Fatal(err)
	}
	if second.Message == "رد مصاغ" || second.Message == "" {
		t.Errorf("second message = %q, want rule-based reply", second.Message)
	}
}
