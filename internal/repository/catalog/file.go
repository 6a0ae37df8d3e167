// Package catalog reads place records from a JSON catalog document.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// FileLoader loads the catalog from a local file on every call.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Path returns the catalog file location.
func (l *FileLoader) Path() string { return l.path }

// Load reads and decodes the catalog file.
func (l *FileLoader) Load(ctx context.Context) ([]place.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", l.path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", l.path, err)
	}
	return records, nil
}

// Parse decodes a JSON array of place records. Entries may be compact or
// canonical, mixed freely. The document must be an array and every record
// must be an object with a unique non-empty id; anything else wraps
// domain.ErrInvalidCatalog.
func Parse(data []byte) ([]place.Place, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: document is not an array", domain.ErrInvalidCatalog)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	records := make([]place.Place, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, entry := range raw {
		entry = bytes.TrimSpace(entry)
		if len(entry) == 0 || entry[0] != '{' {
			return nil, domain.NewCatalogRecordError(i, "not an object")
		}
		p, err := place.Decode(entry)
		if err != nil {
			return nil, domain.NewCatalogRecordError(i, err.Error())
		}
		if err := checkID(i, p.ID, seen); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, nil
}

// checkID rejects a missing or repeated id and remembers the new one.
func checkID(i int, id string, seen map[string]struct{}) error {
	if id == "" {
		return domain.NewCatalogRecordError(i, "missing id")
	}
	if _, dup := seen[id]; dup {
		return domain.NewCatalogRecordError(i, fmt.Sprintf("duplicate id %q", id))
	}
	seen[id] = struct{}{}
	return nil
}
