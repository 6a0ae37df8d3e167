package catalog

import (
	"context"

	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// Loader fetches the full set of catalog records.
type Loader interface {
	Load(ctx context.Context) ([]place.Place, error)
}
