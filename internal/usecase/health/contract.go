package health

import "context"

// StorePinger checks key-value store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// CatalogState reports whether a catalog snapshot is published.
type CatalogState interface {
	Loaded() bool
}
