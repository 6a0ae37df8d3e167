package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/category"
	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
)

// MinSuggestLen is the shortest normalized partial query that gets suggestions.
const MinSuggestLen = 2

// Fixed subtitles for non-place suggestions.
const (
	neighborhoodSubtitle = "حي"
	categorySubtitle     = "فئة"
)

// Suggest returns at most limit typed completions for partial: matching place
// names first, then distinct neighborhoods, then distinct category labels.
func Suggest(idx *index.Index, partial string, limit int) []suggestion.Suggestion {
	q := arabic.Normalize(partial)
	if limit <= 0 || utf8.RuneCountInString(q) < MinSuggestLen {
		return []suggestion.Suggestion{}
	}

	out := make([]suggestion.Suggestion, 0, limit)
	entries := idx.Entries()

	seenIDs := make(map[string]struct{})
	for i := range entries {
		if len(out) == limit {
			return out
		}
		e := &entries[i]
		p := e.Place()
		if _, dup := seenIDs[p.ID]; dup || !strings.Contains(e.Name(), q) {
			continue
		}
		seenIDs[p.ID] = struct{}{}
		out = append(out, placeSuggestion(p))
	}

	seenAreas := make(map[string]struct{})
	for i := range entries {
		if len(out) == limit {
			return out
		}
		e := &entries[i]
		p := e.Place()
		if !p.HasNeighborhood() || !strings.Contains(e.Neighborhood(), q) {
			continue
		}
		if _, dup := seenAreas[e.Neighborhood()]; dup {
			continue
		}
		seenAreas[e.Neighborhood()] = struct{}{}
		out = append(out, suggestion.Suggestion{
			Kind:     suggestion.KindNeighborhood,
			Text:     p.Neighborhood,
			Subtitle: neighborhoodSubtitle,
			Icon:     suggestion.NeighborhoodIcon,
		})
	}

	seenLabels := make(map[string]struct{})
	for i := range entries {
		if len(out) == limit {
			return out
		}
		p := entries[i].Place()
		label := p.CategoryLabel()
		norm := arabic.Normalize(label)
		if norm == "" || !strings.Contains(norm, q) {
			continue
		}
		if _, dup := seenLabels[norm]; dup {
			continue
		}
		seenLabels[norm] = struct{}{}
		out = append(out, suggestion.Suggestion{
			Kind:     suggestion.KindCategory,
			Text:     label,
			Subtitle: categorySubtitle,
			Icon:     categoryIcon(p.Category),
		})
	}
	return out
}

func placeSuggestion(p *place.Place) suggestion.Suggestion {
	subtitle := p.CategoryLabel()
	if p.HasNeighborhood() {
		subtitle = p.Neighborhood + " · " + subtitle
	}
	s := suggestion.Suggestion{
		Kind:     suggestion.KindPlace,
		Text:     p.NameAr,
		Subtitle: subtitle,
		Icon:     category.Icon(p.Category),
		PlaceID:  p.ID,
	}
	if p.Rating > 0 {
		r := p.Rating
		s.Rating = &r
	}
	return s
}

func categoryIcon(code string) string {
	if category.Known(code) {
		return category.Icon(code)
	}
	return suggestion.CategoryIcon
}
