package wainnrooh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
	catalogUC "github.com/kailas-cloud/wainnrooh/internal/usecase/catalog"
	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

func testPlaces() []Place {
	return []Place{
		{ID: "morning", NameAr: "قهوة الصباح", Category: "كافيه", CategoryAr: "كافيه",
			Neighborhood: "حطين", Rating: 4.5, ReviewCount: 200, PriceLevel: "$$"},
		{ID: "evening", NameAr: "قهوة المساء", Category: "كافيه", CategoryAr: "كافيه",
			Neighborhood: "العليا", Rating: 4.1, ReviewCount: 40, PriceLevel: "$$"},
		{ID: "palm", NameAr: "مطعم النخيل", Category: "مطعم", CategoryAr: "مطعم",
			Neighborhood: "العليا", Rating: 4.6, ReviewCount: 120, PriceLevel: "$"},
	}
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(context.Background(), append([]Option{WithPlaces(testPlaces())}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_NoCatalog(t *testing.T) {
	if _, err := New(context.Background()); err == nil {
		t.Fatal("expected error when no catalog is configured")
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "unknown", addrs: []string{"localhost:1234"}}
	if _, err := createStore(cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_InvalidCatalog(t *testing.T) {
	_, err := New(context.Background(), WithPlaces([]Place{{ID: "a"}, {ID: "a"}}))
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("err = %v, want ErrInvalidCatalog", err)
	}
}

func TestNew_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.json")
	doc := `[{"id":"x","n":"حديقة السلام","c":"طبيعة","r":4.3,"p":"free"}]`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := New(context.Background(), WithCatalogFile(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if st := c.Stats(); st.Places != 1 || st.LoadedAt == 0 {
		t.Errorf("stats = %+v", st)
	}
	p, err := c.Place(context.Background(), "x")
	if err != nil || !p.IsFree {
		t.Errorf("Place = %+v, %v", p, err)
	}
}

func TestClient_SearchAndRecent(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	page, err := c.Search(ctx, SearchQuery{Query: "قهوة", Sort: SortRatingDesc, Scope: "u1"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 2 || page.Results[0].Place.ID != "morning" {
		t.Errorf("page = %+v", page)
	}

	if got := c.Recent(ctx, "u1"); len(got) != 1 || got[0] != "قهوة" {
		t.Errorf("Recent = %v", got)
	}
	if got := c.Recent(ctx, "u2"); len(got) != 0 {
		t.Errorf("other scope = %v", got)
	}
	c.ClearRecent(ctx, "u1")
	if got := c.Recent(ctx, "u1"); len(got) != 0 {
		t.Errorf("after clear = %v", got)
	}
}

func TestClient_SearchInvalid(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Search(context.Background(), SearchQuery{MinRating: 7})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
	_, err = c.Search(context.Background(), SearchQuery{Sort: "loudest"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestClient_SuggestAskFacets(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	sugg, err := c.Suggest(ctx, "قهوة", 0)
	if err != nil || len(sugg) == 0 {
		t.Fatalf("Suggest = %v, %v", sugg, err)
	}

	reply, err := c.Ask(ctx, "مطعم رخيص")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if len(reply.Places) != 1 || reply.Places[0].ID != "palm" {
		t.Errorf("reply places = %+v", reply.Places)
	}

	facets, err := c.Facets(ctx)
	if err != nil || len(facets.Categories) != 2 {
		t.Errorf("Facets = %+v, %v", facets, err)
	}
}

func TestClient_AskWithPhraser(t *testing.T) {
	c := newTestClient(t, WithPhraser(&mockPhraser{msg: "جرب النخيل!"}))

	reply, err := c.Ask(context.Background(), "مطعم رخيص")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Message != "جرب النخيل!" {
		t.Errorf("Message = %q", reply.Message)
	}
	if h := c.Health(context.Background()); h.Checks["assistant"] != "ok" {
		t.Errorf("health = %+v", h)
	}
}

func TestClient_AskPhraserFailureFallsBack(t *testing.T) {
	c := newTestClient(t, WithPhraser(&mockPhraser{err: ErrAssistantUnavailable}))

	reply, err := c.Ask(context.Background(), "مطعم رخيص")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Message == "" {
		t.Error("expected rule-based message")
	}
}

func TestClient_PlaceNotFound(t *testing.T) {
	c := newTestClient(t)
	if _, err := c.Place(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_Health(t *testing.T) {
	c := newTestClient(t)
	h := c.Health(context.Background())
	if h.Status != "ok" || h.Checks["store"] != "ok" || h.Checks["assistant"] != "disabled" {
		t.Errorf("health = %+v", h)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestClient_ErrorsAreObserved(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(slog.New(slog.DiscardHandler), reg)
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	c := &Client{
		searchSvc: &mockSearchUC{
			searchFn: func(_ context.Context, _ *request.Request, _ string) (searchUC.Page, error) {
				return searchUC.Page{}, boom
			},
			suggestFn: func(_ context.Context, _ string, limit int) ([]suggestion.Suggestion, error) {
				if limit != defaultSuggestLimit {
					t.Errorf("limit = %d, want default", limit)
				}
				return nil, nil
			},
		},
		obs: obs,
	}

	if _, err := c.Search(context.Background(), SearchQuery{}); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if _, err := c.Suggest(context.Background(), "ab", -1); err != nil {
		t.Errorf("Suggest: %v", err)
	}

	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("search", "error")); got != 1 {
		t.Errorf("search errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("suggest", "empty")); got != 1 {
		t.Errorf("suggest empty = %v, want 1", got)
	}
}

func TestObserver_Outcomes(t *testing.T) {
	tests := []struct {
		err     error
		results int
		want    string
	}{
		{nil, 3, statusOK},
		{nil, 0, statusEmpty},
		{nil, notListing, statusOK},
		{fmt.Errorf("wainnrooh: %w", ErrNotFound), 0, statusNotFound},
		{ErrCatalogNotLoaded, 0, statusNotLoaded},
		{fmt.Errorf("limit: %w", ErrInvalidRequest), 0, statusInvalid},
		{errors.New("boom"), 0, statusError},
	}
	for _, tt := range tests {
		if got := outcome(tt.err, tt.results); got != tt.want {
			t.Errorf("outcome(%v, %d) = %q, want %q", tt.err, tt.results, got, tt.want)
		}
	}
}

func TestClient_Similar(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newTestClient(t, WithPrometheus(reg))
	ctx := context.Background()

	got, err := c.Similar(ctx, "evening", 0)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if len(got) != 2 || got[0].Place.ID != "morning" || got[1].Place.ID != "palm" {
		t.Errorf("Similar = %+v", got)
	}

	if _, err := c.Similar(ctx, "nope", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	ops, err := newObserver(nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(ops.metrics.operations.WithLabelValues("similar", statusOK)); got != 1 {
		t.Errorf("similar ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.metrics.operations.WithLabelValues("similar", statusNotFound)); got != 1 {
		t.Errorf("similar not_found = %v, want 1", got)
	}
}

func TestClient_SimilarPassesLimit(t *testing.T) {
	c := &Client{
		searchSvc: &mockSearchUC{
			similarFn: func(_ context.Context, id string, limit int) ([]result.Result, error) {
				if id != "palm" || limit != 3 {
					t.Errorf("Similar(%q, %d)", id, limit)
				}
				return []result.Result{result.New(&Place{ID: "x"}, 6.5)}, nil
			},
		},
	}
	got, err := c.Similar(context.Background(), "palm", 3)
	if err != nil || len(got) != 1 || got[0].Score != 6.5 {
		t.Errorf("Similar = %+v, %v", got, err)
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := newObserver(nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	if a.metrics.operations != b.metrics.operations {
		t.Error("expected the existing collector to be reused")
	}

	var nilObs *observer
	nilObs.observe("noop", testStart(), nil)
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithValkey("localhost:6379", "secret").apply(cfg)
	if cfg.driver != "valkey" || cfg.addrs[0] != "localhost:6379" || cfg.password != "secret" {
		t.Errorf("valkey cfg = %+v", cfg)
	}

	WithRedis("localhost:6380", "pass").apply(cfg)
	if cfg.driver != "redis" {
		t.Errorf("driver = %q, want redis", cfg.driver)
	}

	WithKeyPrefix("x:").apply(cfg)
	WithRecentCapacity(3).apply(cfg)
	if cfg.keyPrefix != "x:" || cfg.recentCapacity != 3 {
		t.Errorf("prefix/capacity = %q/%d", cfg.keyPrefix, cfg.recentCapacity)
	}

	logger := slog.Default()
	WithLogger(logger).apply(cfg)
	if cfg.logger != logger {
		t.Error("expected logger to be set")
	}

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg)
	if cfg.metricsReg != reg {
		t.Error("expected registerer to be set")
	}
}

func testStart() time.Time { return time.Now() }

func TestClient_ReloadAndAskErrors(t *testing.T) {
	loadedAt := time.UnixMilli(1_700_000_000_000)
	c := &Client{
		catalog: &mockCatalogUC{
			reloadFn: func(_ context.Context) (catalogUC.Stats, error) {
				return catalogUC.Stats{Loaded: true, Places: 3, LoadedAt: loadedAt}, ErrInvalidCatalog
			},
			placeFn: func(_ context.Context, id string) (Place, error) {
				return Place{ID: id}, nil
			},
			stats: catalogUC.Stats{Loaded: true, Places: 3, LoadedAt: loadedAt},
		},
		intentSvc: &mockIntentUC{
			askFn: func(_ context.Context, _ string) (Reply, error) {
				return Reply{}, ErrCatalogNotLoaded
			},
		},
	}

	st, err := c.Reload(context.Background())
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("err = %v, want ErrInvalidCatalog", err)
	}
	if st.Places != 3 || st.LoadedAt != loadedAt.UnixMilli() {
		t.Errorf("stats after failed reload = %+v", st)
	}
	if got := c.Stats(); got.LoadedAt != loadedAt.UnixMilli() {
		t.Errorf("Stats = %+v", got)
	}

	if _, err := c.Ask(context.Background(), "مطعم"); !errors.Is(err, ErrCatalogNotLoaded) {
		t.Errorf("Ask err = %v, want ErrCatalogNotLoaded", err)
	}
	if p, err := c.Place(context.Background(), "x"); err != nil || p.ID != "x" {
		t.Errorf("Place = %+v, %v", p, err)
	}
}
