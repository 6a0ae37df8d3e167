package catalog

import (
	"context"

	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// StaticLoader serves records built in code, checked like a decoded file.
type StaticLoader struct {
	records []place.Place
}

// NewStaticLoader copies records; later changes by the caller are not seen.
func NewStaticLoader(records []place.Place) *StaticLoader {
	return &StaticLoader{records: append([]place.Place(nil), records...)}
}

// Load canonicalizes every record and rejects missing or duplicate ids.
func (l *StaticLoader) Load(ctx context.Context) ([]place.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]place.Place, 0, len(l.records))
	seen := make(map[string]struct{}, len(l.records))
	for i, p := range l.records {
		if err := checkID(i, p.ID, seen); err != nil {
			return nil, err
		}
		out = append(out, place.Canonical(p))
	}
	return out, nil
}
