// Package index precomputes normalized search fields for every catalog record.
package index

import (
	"strings"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// Entry pairs a record with its normalized search fields.
type Entry struct {
	place         *place.Place
	text          string
	name          string
	neighborhood  string
	category      string
	categoryLabel string
}

// Place returns the indexed record.
func (e *Entry) Place() *place.Place { return e.place }

// Text returns the normalized concatenation of every searchable field.
func (e *Entry) Text() string { return e.text }

// Name returns the normalized Arabic and English names.
func (e *Entry) Name() string { return e.name }

// Neighborhood returns the normalized Arabic neighborhood.
func (e *Entry) Neighborhood() string { return e.neighborhood }

// Category returns the normalized category code.
func (e *Entry) Category() string { return e.category }

// CategoryLabel returns the normalized Arabic category label.
func (e *Entry) CategoryLabel() string { return e.categoryLabel }

// Index is an immutable, order-preserving list of entries.
type Index struct {
	places  []place.Place
	entries []Entry
	byID    map[string]int
}

// Build creates one entry per record, in input order.
// The records are copied, so later changes to the input do not affect the index.
func Build(records []place.Place) *Index {
	idx := &Index{
		places:  make([]place.Place, len(records)),
		entries: make([]Entry, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(idx.places, records)

	for i := range idx.places {
		p := &idx.places[i]
		var hood string
		if p.HasNeighborhood() {
			hood = arabic.Normalize(p.Neighborhood)
		}
		idx.entries[i] = Entry{
			place:         p,
			text:          searchText(p),
			name:          arabic.Normalize(join(p.NameAr, p.NameEn)),
			neighborhood:  hood,
			category:      arabic.Normalize(p.Category),
			categoryLabel: arabic.Normalize(p.CategoryAr),
		}
		if _, dup := idx.byID[p.ID]; !dup {
			idx.byID[p.ID] = i
		}
	}
	return idx
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Entries returns the entries in catalog order. Callers must not modify them.
func (idx *Index) Entries() []Entry {
	if idx == nil {
		return nil
	}
	return idx.entries
}

// Place returns the record with the given id.
func (idx *Index) Place(id string) (place.Place, bool) {
	if idx == nil {
		return place.Place{}, false
	}
	i, ok := idx.byID[id]
	if !ok {
		return place.Place{}, false
	}
	return idx.places[i], true
}

// Places returns a copy of every record in catalog order.
func (idx *Index) Places() []place.Place {
	if idx == nil {
		return nil
	}
	out := make([]place.Place, len(idx.places))
	copy(out, idx.places)
	return out
}

// searchText leaves out the unspecified-neighborhood placeholder in both languages.
func searchText(p *place.Place) string {
	parts := []string{p.NameAr, p.NameEn, p.DescriptionAr}
	if p.HasNeighborhood() {
		parts = append(parts, p.Neighborhood)
	}
	if !strings.EqualFold(p.NeighborhoodEn, place.UnspecifiedNeighborhoodEn) {
		parts = append(parts, p.NeighborhoodEn)
	}
	parts = append(parts, p.Category, p.CategoryAr, p.CategoryEn)
	parts = append(parts, p.Audience...)
	parts = append(parts, p.PerfectFor...)
	return arabic.Normalize(join(parts...))
}

func join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, s := range parts {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, " ")
}
