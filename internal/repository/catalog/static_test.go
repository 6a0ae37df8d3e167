package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

func TestStaticLoader_Canonicalizes(t *testing.T) {
	in := []place.Place{{ID: "a", NameAr: "أ", PriceLevel: place.PriceFree}}
	l := NewStaticLoader(in)
	in[0].NameAr = "changed"

	got, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].NameAr != "أ" {
		t.Errorf("loader saw caller mutation: %q", got[0].NameAr)
	}
	if got[0].Neighborhood != place.UnspecifiedNeighborhood {
		t.Errorf("Neighborhood = %q, want sentinel", got[0].Neighborhood)
	}
	if !got[0].IsFree {
		t.Error("free price should set IsFree")
	}
}

func TestStaticLoader_RejectsBadIDs(t *testing.T) {
	tests := map[string][]place.Place{
		"missing":   {{NameAr: "x"}},
		"duplicate": {{ID: "a"}, {ID: "a"}},
	}
	for name, records := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewStaticLoader(records).Load(context.Background())
			if !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestStaticLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStaticLoader(nil).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}
