package intent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
)

// BudgetStore is the persistence interface for call counters.
type BudgetStore interface {
	IncrBy(ctx context.Context, key string, val int64) error
	Get(ctx context.Context, key string) (int64, error)
}

// BudgetedPhraser caps phrasing calls per UTC day and month. A zero limit is unlimited.
// Check is in-memory; successful calls are written behind to the store so a
// restart resumes from the persisted counters.
type BudgetedPhraser struct {
	inner  Phraser
	store  BudgetStore
	prefix string
	logger *zap.Logger
	now    func() time.Time

	mu             sync.Mutex
	dailyUsed      int64
	monthlyUsed    int64
	dailyLimit     int64
	monthlyLimit   int64
	lastDayReset   time.Time
	lastMonthReset time.Time
}

// NewBudgetedPhraser wraps inner. store may be nil.
func NewBudgetedPhraser(
	inner Phraser, store BudgetStore, keyPrefix string,
	dailyLimit, monthlyLimit int64, logger *zap.Logger,
) *BudgetedPhraser {
	b := &BudgetedPhraser{
		inner:        inner,
		store:        store,
		prefix:       keyPrefix,
		logger:       logger,
		now:          time.Now,
		dailyLimit:   dailyLimit,
		monthlyLimit: monthlyLimit,
	}
	now := b.now().UTC()
	b.lastDayReset = truncateToDay(now)
	b.lastMonthReset = truncateToMonth(now)
	return b
}

// Load reads today's and this month's counters from the store.
func (b *BudgetedPhraser) Load(ctx context.Context) {
	if b.store == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now().UTC()
	if val, err := b.store.Get(ctx, b.dailyKey(now)); err == nil {
		b.dailyUsed = val
	} else {
		b.logger.Warn("Failed to load daily assistant budget", zap.Error(err))
	}
	if val, err := b.store.Get(ctx, b.monthlyKey(now)); err == nil {
		b.monthlyUsed = val
	} else {
		b.logger.Warn("Failed to load monthly assistant budget", zap.Error(err))
	}

	b.logger.Info("Assistant budget loaded",
		zap.Int64("daily_used", b.dailyUsed),
		zap.Int64("monthly_used", b.monthlyUsed),
	)
}

// Phrase delegates to the inner phraser unless the budget is spent.
func (b *BudgetedPhraser) Phrase(ctx context.Context, query string, reply intent.Reply) (string, error) {
	if err := b.check(); err != nil {
		return "", err
	}
	msg, err := b.inner.Phrase(ctx, query, reply)
	if err != nil {
		return "", err
	}
	b.record()
	return msg, nil
}

// Remaining returns calls left today and this month (-1 if unlimited).
func (b *BudgetedPhraser) Remaining() (daily, monthly int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetIfNeeded()
	return remaining(b.dailyLimit, b.dailyUsed), remaining(b.monthlyLimit, b.monthlyUsed)
}

func (b *BudgetedPhraser) check() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetIfNeeded()

	switch {
	case b.dailyLimit > 0 && b.dailyUsed >= b.dailyLimit:
		metrics.AssistantBudgetExceededTotal.WithLabelValues("daily").Inc()
		return fmt.Errorf("%w: daily budget of %d calls spent", domain.ErrAssistantUnavailable, b.dailyLimit)
	case b.monthlyLimit > 0 && b.monthlyUsed >= b.monthlyLimit:
		metrics.AssistantBudgetExceededTotal.WithLabelValues("monthly").Inc()
		return fmt.Errorf("%w: monthly budget of %d calls spent", domain.ErrAssistantUnavailable, b.monthlyLimit)
	}
	return nil
}

func (b *BudgetedPhraser) record() {
	b.mu.Lock()
	b.resetIfNeeded()
	b.dailyUsed++
	b.monthlyUsed++
	now := b.now().UTC()
	b.mu.Unlock()

	if b.store == nil {
		return
	}

	// Detached from the request so a cancelled caller still persists the call.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, key := range []string{b.dailyKey(now), b.monthlyKey(now)} {
		if err := b.store.IncrBy(ctx, key, 1); err != nil {
			b.logger.Warn("Failed to persist assistant budget", zap.String("key", key), zap.Error(err))
		}
	}
}

func (b *BudgetedPhraser) dailyKey(t time.Time) string {
	return fmt.Sprintf("%sbudget:assistant:daily:%s", b.prefix, t.Format("2006-01-02"))
}

func (b *BudgetedPhraser) monthlyKey(t time.Time) string {
	return fmt.Sprintf("%sbudget:assistant:monthly:%s", b.prefix, t.Format("2006-01"))
}

// resetIfNeeded zeroes counters when the day or month rolls over. Caller holds mu.
func (b *BudgetedPhraser) resetIfNeeded() {
	now := b.now().UTC()
	today := truncateToDay(now)
	thisMonth := truncateToMonth(now)

	if today.After(b.lastDayReset) {
		b.dailyUsed = 0
		b.lastDayReset = today
	}
	if thisMonth.After(b.lastMonthReset) {
		b.monthlyUsed = 0
		b.lastMonthReset = thisMonth
	}
}

func remaining(limit, used int64) int64 {
	if limit == 0 {
		return -1
	}
	return max(limit-used, 0)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
