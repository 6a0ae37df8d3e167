package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/filter"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/order"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
	catalogUC "github.com/kailas-cloud/wainnrooh/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/wainnrooh/internal/usecase/health"
	intentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/intent"
	recentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/recent"
	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// ClientIDHeader scopes the recent-search list to one client.
const ClientIDHeader = "X-Client-ID"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Options holds request limits.
type Options struct {
	Limits       request.Limits
	SuggestLimit int
}

// Server serves the places API.
type Server struct {
	catalog       *catalogUC.Service
	search        *searchUC.Service
	intent        *intentUC.Service
	recent        *recentUC.Service
	health        *healthUC.Service
	opts          Options
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *catalogUC.Service,
	search *searchUC.Service,
	intent *intentUC.Service,
	recent *recentUC.Service,
	health *healthUC.Service,
	opts Options,
	logger *zap.Logger,
) *Server {
	if opts.SuggestLimit <= 0 {
		opts.SuggestLimit = 8
	}
	s := &Server{
		catalog: catalog,
		search:  search,
		intent:  intent,
		recent:  recent,
		health:  health,
		opts:    opts,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorResponseCodePlaceNotFound),
		sentinelHandler(domain.ErrCatalogNotLoaded, http.StatusServiceUnavailable, ErrorResponseCodeCatalogNotLoaded),
		sentinelHandler(domain.ErrInvalidCatalog, http.StatusUnprocessableEntity, ErrorResponseCodeInvalidCatalog),
		sentinelHandler(domain.ErrAssistantUnavailable, http.StatusBadGateway, ErrorResponseCodeAssistantDown),
	}
	return s
}

// Routes mounts every endpoint on r.
func (s *Server) Routes(r gochi.Router) {
	r.Get("/search", s.Search)
	r.Get("/suggest", s.Suggest)
	r.Get("/ask", s.Ask)
	r.Get("/recent", s.ListRecent)
	r.Delete("/recent", s.ClearRecent)
	r.Get("/facets", s.Facets)
	r.Get("/places/{id}", s.GetPlace)
	r.Get("/places/{id}/similar", s.SimilarPlaces)
	r.Post("/catalog/reload", s.ReloadCatalog)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorResponseCodeRouteNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorResponseCodeMethodNotAllowed, "method not allowed")
	})
}

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		return
	}

	req, err := searchRequestFromParams(params, s.opts.Limits)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, err.Error())
		return
	}

	page, err := s.search.Search(r.Context(), &req, clientScope(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]SearchResultItem, len(page.Results))
	for i := range page.Results {
		items[i] = searchResultToResponse(&page.Results[i])
	}

	writeJSON(w, http.StatusOK, SearchResultListResponse{
		Query: req.Query(),
		Sort:  string(req.Order()),
		Items: items,
		Limit: req.Limit(),
		Total: page.Total,
	})
}

// Suggest handles GET /suggest.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	params, err := bindSuggestParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		return
	}

	limit := s.opts.SuggestLimit
	if params.Limit != nil {
		if *params.Limit <= 0 {
			writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, "limit must be positive")
			return
		}
		limit = min(*params.Limit, s.opts.SuggestLimit)
	}

	items, err := s.search.Suggest(r.Context(), params.Q, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuggestionListResponse{Items: items})
}

// Ask handles GET /ask.
func (s *Server) Ask(w http.ResponseWriter, r *http.Request) {
	params, err := bindAskParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		return
	}

	reply, err := s.intent.Ask(r.Context(), params.Q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// ListRecent handles GET /recent.
func (s *Server) ListRecent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RecentListResponse{Items: s.recent.List(r.Context(), clientScope(r))})
}

// ClearRecent handles DELETE /recent.
func (s *Server) ClearRecent(w http.ResponseWriter, r *http.Request) {
	s.recent.Clear(r.Context(), clientScope(r))
	w.WriteHeader(http.StatusNoContent)
}

// Facets handles GET /facets.
func (s *Server) Facets(w http.ResponseWriter, r *http.Request) {
	facets, err := s.search.Facets(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facets)
}

// GetPlace handles GET /places/{id}.
func (s *Server) GetPlace(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Place(r.Context(), gochi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SimilarPlaces handles GET /places/{id}/similar.
func (s *Server) SimilarPlaces(w http.ResponseWriter, r *http.Request) {
	params, err := bindSimilarParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		return
	}

	limit := searchUC.DefaultSimilarLimit
	if params.Limit != nil {
		if *params.Limit <= 0 {
			writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, "limit must be positive")
			return
		}
		limit = *params.Limit
		if m := s.opts.Limits.MaxLimit; m > 0 {
			limit = min(limit, m)
		}
	}

	id := gochi.URLParam(r, "id")
	similar, err := s.search.Similar(r.Context(), id, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]SearchResultItem, len(similar))
	for i := range similar {
		items[i] = searchResultToResponse(&similar[i])
	}
	writeJSON(w, http.StatusOK, SimilarListResponse{PlaceID: id, Items: items})
}

// ReloadCatalog handles POST /catalog/reload.
func (s *Server) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.Reload(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthUC.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func clientScope(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(ClientIDHeader))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrNotFound,
		domain.ErrCatalogNotLoaded,
		domain.ErrInvalidCatalog,
		domain.ErrAssistantUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}

func searchRequestFromParams(p SearchParams, lim request.Limits) (request.Request, error) {
	filters, err := filter.NewSet(filter.Params{
		Category:     deref(p.Category),
		Neighborhood: deref(p.Neighborhood),
		Price:        deref(p.Price),
		Audience:     deref(p.Audience),
		PerfectFor:   deref(p.PerfectFor),
		FreeOnly:     deref(p.Free),
		MinRating:    deref(p.MinRating),
	})
	if err != nil {
		return request.Request{}, err
	}
	return request.New(deref(p.Q), filters, order.Key(deref(p.Sort)), deref(p.Limit), lim)
}

func searchResultToResponse(r *result.Result) SearchResultItem {
	return SearchResultItem{Place: *r.Place(), Score: r.Score()}
}
