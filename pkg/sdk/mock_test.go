package wainnrooh

import (
	"context"

	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
	catalogUC "github.com/kailas-cloud/wainnrooh/internal/usecase/catalog"
	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	reloadFn func(ctx context.Context) (catalogUC.Stats, error)
	placeFn  func(ctx context.Context, id string) (place.Place, error)
	stats    catalogUC.Stats
}

func (m *mockCatalogUC) Reload(ctx context.Context) (catalogUC.Stats, error) {
	return m.reloadFn(ctx)
}

func (m *mockCatalogUC) Place(ctx context.Context, id string) (place.Place, error) {
	return m.placeFn(ctx, id)
}

func (m *mockCatalogUC) Stats() catalogUC.Stats { return m.stats }

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn  func(ctx context.Context, req *request.Request, scope string) (searchUC.Page, error)
	suggestFn func(ctx context.Context, partial string, limit int) ([]suggestion.Suggestion, error)
	facetsFn  func(ctx context.Context) (searchUC.Facets, error)
	similarFn func(ctx context.Context, id string, limit int) ([]result.Result, error)
}

func (m *mockSearchUC) Search(ctx context.Context, req *request.Request, scope string) (searchUC.Page, error) {
	return m.searchFn(ctx, req, scope)
}

func (m *mockSearchUC) Suggest(ctx context.Context, partial string, limit int) ([]suggestion.Suggestion, error) {
	return m.suggestFn(ctx, partial, limit)
}

func (m *mockSearchUC) Facets(ctx context.Context) (searchUC.Facets, error) {
	return m.facetsFn(ctx)
}

func (m *mockSearchUC) Similar(ctx context.Context, id string, limit int) ([]result.Result, error) {
	return m.similarFn(ctx, id, limit)
}

// --- intentUseCase mock ---

type mockIntentUC struct {
	askFn func(ctx context.Context, query string) (intent.Reply, error)
}

func (m *mockIntentUC) Ask(ctx context.Context, query string) (intent.Reply, error) {
	return m.askFn(ctx, query)
}

// --- phraser mock ---

type mockPhraser struct {
	msg string
	err error
}

func (m *mockPhraser) Phrase(_ context.Context, _ string, _ Reply) (string, error) {
	return m.msg, m.err
}
