package intent

import (
	"context"

	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
)

// Catalog provides the current index snapshot.
type Catalog interface {
	Index(ctx context.Context) (*index.Index, error)
}

// Phraser rewrites a rule-based reply into a friendlier sentence.
type Phraser interface {
	Phrase(ctx context.Context, query string, reply intent.Reply) (string, error)
}
