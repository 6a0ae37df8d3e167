package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/filter"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
)

// Additive score awards.
const (
	phraseInName    = 100
	tokenInName     = 30
	tokenInArea     = 15
	tokenInCategory = 15
	tokenInText     = 5
	stemInText      = 3
	fullCoverage    = 20
	ratingWeight    = 2
	trendingBoost   = 5

	// filterOnlyScore seeds every record when only filters are given.
	filterOnlyScore = 1
)

// minStemLen applies to both the token and the truncated stem, in runes.
const minStemLen = 4

// Search scores every index entry against query and keeps those passing filters.
// The returned order is the catalog order; ranking is done by Sort.
func Search(idx *index.Index, query string, filters *filter.Set) []result.Result {
	tokens := arabic.Tokens(query)
	active := filters != nil && !filters.IsEmpty()
	entries := idx.Entries()
	out := make([]result.Result, 0, len(entries))

	if len(tokens) == 0 {
		seed := 0.0
		if active {
			seed = filterOnlyScore
		}
		for i := range entries {
			p := entries[i].Place()
			if active && !filters.Matches(p) {
				continue
			}
			out = append(out, result.New(p, seed))
		}
		return out
	}

	phrase := strings.Join(tokens, " ")
	for i := range entries {
		e := &entries[i]
		score := scoreEntry(e, phrase, tokens)
		if score == 0 {
			continue
		}
		p := e.Place()
		if active && !filters.Matches(p) {
			continue
		}
		score += p.Rating * ratingWeight
		if p.Trending {
			score += trendingBoost
		}
		out = append(out, result.New(p, score))
	}
	return out
}

// scoreEntry returns the text relevance of e, excluding quality boosts.
func scoreEntry(e *index.Entry, phrase string, tokens []string) float64 {
	var score float64
	if strings.Contains(e.Name(), phrase) {
		score += phraseInName
	}

	matched := 0
	for _, tok := range tokens {
		hit := false
		if strings.Contains(e.Name(), tok) {
			score += tokenInName
			hit = true
		}
		if strings.Contains(e.Neighborhood(), tok) {
			score += tokenInArea
			hit = true
		}
		if categoryMatches(e, tok) {
			score += tokenInCategory
			hit = true
		}
		if strings.Contains(e.Text(), tok) {
			score += tokenInText
			hit = true
		} else if stemMatches(e.Text(), tok) {
			score += stemInText
			hit = true
		}
		if hit {
			matched++
		}
	}

	if len(tokens) > 1 && matched == len(tokens) {
		score += fullCoverage
	}
	return score
}

// categoryMatches checks code and label in both containment directions,
// so singular and plural forms of a category meet.
func categoryMatches(e *index.Entry, tok string) bool {
	for _, c := range []string{e.Category(), e.CategoryLabel()} {
		if c == "" {
			continue
		}
		if strings.Contains(c, tok) || strings.Contains(tok, c) {
			return true
		}
	}
	return false
}

// stemMatches is a naive suffix fallback: drop one or two trailing runes
// and look for the stem in text. Not a morphological stemmer.
func stemMatches(text, tok string) bool {
	n := utf8.RuneCountInString(tok)
	if n < minStemLen {
		return false
	}
	runes := []rune(tok)
	for drop := 1; drop <= 2; drop++ {
		if n-drop < minStemLen {
			break
		}
		if strings.Contains(text, string(runes[:n-drop])) {
			return true
		}
	}
	return false
}
