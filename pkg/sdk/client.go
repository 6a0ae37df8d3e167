package wainnrooh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/wainnrooh/internal/db"
	dbMemory "github.com/kailas-cloud/wainnrooh/internal/db/memory"
	dbRedis "github.com/kailas-cloud/wainnrooh/internal/db/redis"
	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/filter"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
	catalogrepo "github.com/kailas-cloud/wainnrooh/internal/repository/catalog"
	catalogUC "github.com/kailas-cloud/wainnrooh/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/wainnrooh/internal/usecase/health"
	intentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/intent"
	recentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/recent"
	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "wainnrooh:"
	defaultSuggestLimit     = 8
)

// Internal interfaces, swapped for mocks in tests.
type catalogUseCase interface {
	Reload(ctx context.Context) (catalogUC.Stats, error)
	Place(ctx context.Context, id string) (place.Place, error)
	Stats() catalogUC.Stats
}

type searchUseCase interface {
	Search(ctx context.Context, req *request.Request, scope string) (searchUC.Page, error)
	Suggest(ctx context.Context, partial string, limit int) ([]suggestion.Suggestion, error)
	Facets(ctx context.Context) (searchUC.Facets, error)
	Similar(ctx context.Context, id string, limit int) ([]result.Result, error)
}

type intentUseCase interface {
	Ask(ctx context.Context, query string) (intent.Reply, error)
}

type recentUseCase interface {
	List(ctx context.Context, scope string) []string
	Clear(ctx context.Context, scope string)
}

type healthUseCase interface {
	Check(ctx context.Context) healthUC.Report
}

// Client is the wainnrooh SDK entry point.
type Client struct {
	store     db.Store
	catalog   catalogUseCase
	searchSvc searchUseCase
	intentSvc intentUseCase
	recentSvc recentUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client, connects the store and loads the catalog.
// The provided context is used for the readiness check and the first load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: "memory", keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	loader, err := createLoader(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("wainnrooh: store not ready: %w", err)
	}

	c := wireClient(store, loader, cfg, obs)
	if _, err := c.Reload(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

func createLoader(cfg *clientConfig) (catalogUC.Loader, error) {
	switch {
	case cfg.catalogPath != "":
		return catalogrepo.NewFileLoader(cfg.catalogPath), nil
	case cfg.places != nil:
		return catalogrepo.NewStaticLoader(cfg.places), nil
	default:
		return nil, errors.New("wainnrooh: catalog required (use WithCatalogFile or WithPlaces)")
	}
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			ClientName: "wainnrooh-sdk",
		})
		if err != nil {
			return nil, fmt.Errorf("wainnrooh: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("wainnrooh: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, loader catalogUC.Loader, cfg *clientConfig, obs *observer) *Client {
	catalogSvc := catalogUC.New(loader)
	recentSvc := recentUC.New(store, cfg.keyPrefix, cfg.recentCapacity)

	// Pass a nil interface, not a typed nil, when no phraser is configured.
	var phraser intentUC.Phraser
	if cfg.phraser != nil {
		phraser = cfg.phraser
	}

	return &Client{
		store:     store,
		catalog:   catalogSvc,
		searchSvc: searchUC.New(catalogSvc, recentSvc),
		intentSvc: intentUC.New(catalogSvc, phraser),
		recentSvc: recentSvc,
		healthSvc: healthUC.New(store, catalogSvc, cfg.phraser != nil),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Reload re-reads the catalog and swaps the snapshot. On failure the
// previous snapshot keeps serving.
func (c *Client) Reload(ctx context.Context) (_ CatalogStats, err error) {
	start := time.Now()
	defer func() { c.obs.observe("reload", start, err) }()

	st, err := c.catalog.Reload(ctx)
	if err != nil {
		return statsFromUC(st), fmt.Errorf("wainnrooh: %w", err)
	}
	return statsFromUC(st), nil
}

// Stats describes the loaded snapshot.
func (c *Client) Stats() CatalogStats {
	return statsFromUC(c.catalog.Stats())
}

// Search runs a scored, filtered, ranked search.
func (c *Client) Search(ctx context.Context, q SearchQuery) (_ SearchPage, err error) {
	start := time.Now()
	var n int
	defer func() { c.obs.observeList("search", start, n, err) }()

	req, err := buildRequest(q)
	if err != nil {
		return SearchPage{}, err
	}

	page, err := c.searchSvc.Search(ctx, &req, q.Scope)
	if err != nil {
		return SearchPage{}, fmt.Errorf("wainnrooh: %w", err)
	}

	out := SearchPage{Results: make([]SearchResult, len(page.Results)), Total: page.Total}
	for i := range page.Results {
		out.Results[i] = SearchResult{Place: *page.Results[i].Place(), Score: page.Results[i].Score()}
	}
	n = len(out.Results)
	return out, nil
}

// Suggest returns up to limit completions for a partial query. limit <= 0 uses 8.
func (c *Client) Suggest(ctx context.Context, partial string, limit int) (out []Suggestion, err error) {
	start := time.Now()
	defer func() { c.obs.observeList("suggest", start, len(out), err) }()

	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	out, err = c.searchSvc.Suggest(ctx, partial, limit)
	if err != nil {
		return nil, fmt.Errorf("wainnrooh: %w", err)
	}
	return out, nil
}

// Ask parses a natural-language request and answers it.
func (c *Client) Ask(ctx context.Context, query string) (reply Reply, err error) {
	start := time.Now()
	defer func() { c.obs.observeList("ask", start, len(reply.Places), err) }()

	reply, err = c.intentSvc.Ask(ctx, query)
	if err != nil {
		return Reply{}, fmt.Errorf("wainnrooh: %w", err)
	}
	return reply, nil
}

// Facets lists the filter values present in the catalog.
func (c *Client) Facets(ctx context.Context) (_ Facets, err error) {
	start := time.Now()
	defer func() { c.obs.observe("facets", start, err) }()

	f, err := c.searchSvc.Facets(ctx)
	if err != nil {
		return Facets{}, fmt.Errorf("wainnrooh: %w", err)
	}
	return f, nil
}

// Place returns one record by id.
func (c *Client) Place(ctx context.Context, id string) (_ Place, err error) {
	start := time.Now()
	defer func() { c.obs.observe("place", start, err) }()

	p, err := c.catalog.Place(ctx, id)
	if err != nil {
		return Place{}, fmt.Errorf("wainnrooh: %w", err)
	}
	return p, nil
}

// Similar returns up to limit places sharing the category or neighborhood of
// the place id, best match first. limit <= 0 uses 10.
func (c *Client) Similar(ctx context.Context, id string, limit int) (out []SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observeList("similar", start, len(out), err) }()

	similar, err := c.searchSvc.Similar(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("wainnrooh: %w", err)
	}
	out = make([]SearchResult, len(similar))
	for i := range similar {
		out[i] = SearchResult{Place: *similar[i].Place(), Score: similar[i].Score()}
	}
	return out, nil
}

// Recent returns the scope's recent searches, newest first.
func (c *Client) Recent(ctx context.Context, scope string) []string {
	return c.recentSvc.List(ctx, scope)
}

// ClearRecent forgets the scope's recent searches.
func (c *Client) ClearRecent(ctx context.Context, scope string) {
	c.recentSvc.Clear(ctx, scope)
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

func buildRequest(q SearchQuery) (request.Request, error) {
	filters, err := filter.NewSet(filter.Params{
		Category:     q.Category,
		Neighborhood: q.Neighborhood,
		Price:        q.Price,
		Audience:     q.Audience,
		PerfectFor:   q.PerfectFor,
		FreeOnly:     q.FreeOnly,
		MinRating:    q.MinRating,
	})
	if err != nil {
		return request.Request{}, fmt.Errorf("wainnrooh: %w: %w", domain.ErrInvalidRequest, err)
	}
	req, err := request.New(q.Query, filters, q.Sort, q.Limit, request.Limits{})
	if err != nil {
		return request.Request{}, fmt.Errorf("wainnrooh: %w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}

func statsFromUC(st catalogUC.Stats) CatalogStats {
	out := CatalogStats{Places: st.Places}
	if st.Loaded {
		out.LoadedAt = st.LoadedAt.UnixMilli()
	}
	return out
}
