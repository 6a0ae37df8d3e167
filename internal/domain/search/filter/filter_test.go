package filter

import (
	"testing"

	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

func mustSet(t *testing.T, p Params) Set {
	t.Helper()
	s, err := NewSet(p)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func samplePlace() *place.Place {
	return &place.Place{
		ID:             "1",
		NameAr:         "كافيه الورد",
		Category:       "كافيه",
		CategoryAr:     "مقهى",
		Neighborhood:   "حي العليا",
		NeighborhoodEn: "Al Olaya",
		Rating:         4.5,
		PriceLevel:     place.PriceModerate,
		Audience:       []string{"عائلات", "أصدقاء"},
		PerfectFor:     []string{"دراسة هادئة"},
	}
}

func TestNewSet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"empty", Params{}, false},
		{"rating ok", Params{MinRating: 4.5}, false},
		{"rating negative", Params{MinRating: -1}, true},
		{"rating too high", Params{MinRating: 6}, true},
		{"price ok", Params{Price: "$$"}, false},
		{"price legacy free", Params{Price: "free"}, false},
		{"price unknown", Params{Price: "cheap"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.params)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSet error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !mustSet(t, Params{}).IsEmpty() {
		t.Error("zero params should be empty")
	}
	if mustSet(t, Params{FreeOnly: true}).IsEmpty() {
		t.Error("free-only should not be empty")
	}
	if mustSet(t, Params{Category: "   "}).IsEmpty() != true {
		t.Error("whitespace-only values normalize to empty")
	}
}

func TestMatches(t *testing.T) {
	p := samplePlace()

	tests := []struct {
		name   string
		params Params
		want   bool
	}{
		{"no constraint", Params{}, true},
		{"category code", Params{Category: "كافيه"}, true},
		{"category arabic label", Params{Category: "مقهى"}, true},
		{"category other", Params{Category: "مطعم"}, false},
		{"category substring is not enough", Params{Category: "كافي"}, false},
		{"neighborhood substring", Params{Neighborhood: "العليا"}, true},
		{"neighborhood english", Params{Neighborhood: "OLAYA"}, true},
		{"neighborhood other", Params{Neighborhood: "حطين"}, false},
		{"price exact", Params{Price: "$$"}, true},
		{"price other", Params{Price: "$"}, false},
		{"audience normalized substring", Params{Audience: "اصدقاء"}, true},
		{"audience other", Params{Audience: "أزواج"}, false},
		{"perfect for substring", Params{PerfectFor: "هادئه"}, true},
		{"perfect for other", Params{PerfectFor: "سهرة"}, false},
		{"free only", Params{FreeOnly: true}, false},
		{"min rating pass", Params{MinRating: 4.5}, true},
		{"min rating fail", Params{MinRating: 4.6}, false},
		{"combined", Params{Category: "كافيه", Neighborhood: "العليا", MinRating: 4}, true},
		{"combined one fails", Params{Category: "كافيه", Neighborhood: "حطين"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustSet(t, tt.params).Matches(p); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatches_FreeByPrice(t *testing.T) {
	p := &place.Place{ID: "2", PriceLevel: place.PriceFree}
	if !mustSet(t, Params{FreeOnly: true}).Matches(p) {
		t.Error("a free-priced place should pass the free-only filter")
	}
	if !mustSet(t, Params{Price: "free"}).Matches(p) {
		t.Error("legacy free spelling should match the free tier")
	}
}
