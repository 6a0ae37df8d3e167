package domain

import (
	"errors"
	"testing"
)

func TestCatalogRecordError(t *testing.T) {
	err := NewCatalogRecordError(3, "missing id")

	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatal("expected error to wrap ErrInvalidCatalog")
	}
	var rec *CatalogRecordError
	if !errors.As(err, &rec) {
		t.Fatal("expected *CatalogRecordError")
	}
	if rec.Index != 3 {
		t.Errorf("expected index 3, got %d", rec.Index)
	}
	if got, want := err.Error(), "invalid catalog: record 3: missing id"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
