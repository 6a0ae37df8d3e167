package wainnrooh

import "github.com/kailas-cloud/wainnrooh/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound             = domain.ErrNotFound
	ErrInvalidCatalog       = domain.ErrInvalidCatalog
	ErrCatalogNotLoaded     = domain.ErrCatalogNotLoaded
	ErrInvalidRequest       = domain.ErrInvalidRequest
	ErrAssistantUnavailable = domain.ErrAssistantUnavailable
)
