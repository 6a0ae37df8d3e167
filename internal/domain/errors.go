package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCatalog signals a catalog document that is not a collection of place records.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrCatalogNotLoaded signals a query issued before the first successful catalog load.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	// ErrInvalidRequest signals malformed search parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAssistantUnavailable signals a failing reply phrasing provider.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// CatalogRecordError wraps ErrInvalidCatalog with the offending record position.
type CatalogRecordError struct {
	Index  int
	Reason string
}

func (e *CatalogRecordError) Error() string {
	return fmt.Sprintf("%s: record %d: %s", ErrInvalidCatalog.Error(), e.Index, e.Reason)
}

func (e *CatalogRecordError) Unwrap() error { return ErrInvalidCatalog }

// NewCatalogRecordError creates a per-record catalog error.
func NewCatalogRecordError(index int, reason string) error {
	return &CatalogRecordError{Index: index, Reason: reason}
}
