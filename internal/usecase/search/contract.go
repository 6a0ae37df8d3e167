package search

import (
	"context"

	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
)

// Catalog provides the current index snapshot.
type Catalog interface {
	Index(ctx context.Context) (*index.Index, error)
}

// RecentRecorder remembers executed queries. Failures are handled by the recorder.
type RecentRecorder interface {
	Add(ctx context.Context, scope, query string)
}
