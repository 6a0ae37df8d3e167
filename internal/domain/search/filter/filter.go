package filter

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

// Params carries raw caller-supplied filter values. Empty fields impose no constraint.
type Params struct {
	Category     string
	Neighborhood string
	Price        string
	Audience     string
	PerfectFor   string
	FreeOnly     bool
	MinRating    float64
}

// Set is a validated structured filter: a hard AND of independent predicates.
// Text values are stored normalized so comparisons ignore spelling variants.
type Set struct {
	category     string
	neighborhood string
	price        place.PriceLevel
	audience     string
	perfectFor   string
	freeOnly     bool
	minRating    float64
}

// NewSet validates and normalizes filter parameters.
func NewSet(p Params) (Set, error) {
	if p.MinRating < 0 || p.MinRating > MaxRating {
		return Set{}, fmt.Errorf("min rating must be between 0 and %.0f, got %v", MaxRating, p.MinRating)
	}

	price := place.PriceUnknown
	if strings.TrimSpace(p.Price) != "" {
		price = place.ParsePrice(p.Price)
		if price == place.PriceUnknown {
			return Set{}, fmt.Errorf("unknown price level %q", p.Price)
		}
	}

	return Set{
		category:     arabic.Normalize(p.Category),
		neighborhood: arabic.Normalize(p.Neighborhood),
		price:        price,
		audience:     arabic.Normalize(p.Audience),
		perfectFor:   arabic.Normalize(p.PerfectFor),
		freeOnly:     p.FreeOnly,
		minRating:    p.MinRating,
	}, nil
}

// Category returns the normalized category constraint.
func (s Set) Category() string { return s.category }

// Neighborhood returns the normalized neighborhood substring constraint.
func (s Set) Neighborhood() string { return s.neighborhood }

// Price returns the exact price constraint.
func (s Set) Price() place.PriceLevel { return s.price }

// Audience returns the normalized audience constraint.
func (s Set) Audience() string { return s.audience }

// PerfectFor returns the normalized occasion constraint.
func (s Set) PerfectFor() string { return s.perfectFor }

// FreeOnly reports whether only free places pass.
func (s Set) FreeOnly() bool { return s.freeOnly }

// MinRating returns the minimum rating (0 = none).
func (s Set) MinRating() float64 { return s.minRating }

// IsEmpty reports whether the set imposes no constraint.
func (s Set) IsEmpty() bool {
	return s.category == "" && s.neighborhood == "" && s.price == place.PriceUnknown &&
		s.audience == "" && s.perfectFor == "" && !s.freeOnly && s.minRating == 0
}

// Matches reports whether p passes every active predicate.
func (s Set) Matches(p *place.Place) bool {
	if s.category != "" &&
		arabic.Normalize(p.Category) != s.category &&
		arabic.Normalize(p.CategoryAr) != s.category {
		return false
	}
	if s.neighborhood != "" &&
		!strings.Contains(arabic.Normalize(p.Neighborhood), s.neighborhood) &&
		!strings.Contains(arabic.Normalize(p.NeighborhoodEn), s.neighborhood) {
		return false
	}
	if s.price != place.PriceUnknown && p.PriceLevel != s.price {
		return false
	}
	if s.audience != "" && !anyContains(p.Audience, s.audience) {
		return false
	}
	if s.perfectFor != "" && !anyContains(p.PerfectFor, s.perfectFor) {
		return false
	}
	if s.freeOnly && !p.Free() {
		return false
	}
	if s.minRating > 0 && p.Rating < s.minRating {
		return false
	}
	return true
}

func anyContains(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(arabic.Normalize(t), needle) {
			return true
		}
	}
	return false
}
