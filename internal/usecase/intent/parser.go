// Package intent turns a natural-language request into slot filters and runs
// the guided attribute search over the catalog.
package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// Matched-filter label prefixes shown back to the user.
const (
	labelFree         = "مجاني"
	labelNew          = "جديد"
	labelCategory     = "فئة: "
	labelCuisine      = "مطبخ: "
	labelPrice        = "سعر: "
	labelAudience     = "جمهور: "
	labelPerfectFor   = "مناسب لـ: "
	labelNeighborhood = "حي: "
)

// Parse reads slots from query. Each table is scanned in order and the first
// key with a trigger word contained in the query wins.
func Parse(query string) intent.Intent {
	q := arabic.Normalize(query)
	in := intent.Intent{
		Sort:           intent.SortRatingDesc,
		Limit:          intent.DefaultLimit,
		MatchedFilters: []string{},
	}

	if containsAny(q, freeWords) {
		in.FreeOnly = true
		in.MatchedFilters = append(in.MatchedFilters, labelFree)
	}
	if containsAny(q, newWords) {
		in.NewOnly = true
		in.MatchedFilters = append(in.MatchedFilters, labelNew)
	}

	if v, ok := firstMatch(q, categoryTable); ok {
		in.Category = v
		in.MatchedFilters = append(in.MatchedFilters, labelCategory+v)
	}
	if v, ok := firstMatch(q, cuisineTable); ok {
		in.Cuisine = v
		in.MatchedFilters = append(in.MatchedFilters, labelCuisine+v)
		if in.Category == "" {
			in.Category = cuisineCategory
		}
	}
	if v, ok := firstMatch(q, priceTable); ok {
		in.Price = place.PriceLevel(v)
		in.MatchedFilters = append(in.MatchedFilters, labelPrice+v)
	}
	if v, ok := firstMatch(q, audienceTable); ok {
		in.Audience = v
		in.MatchedFilters = append(in.MatchedFilters, labelAudience+v)
	}
	if v, ok := firstMatch(q, perfectForTable); ok {
		in.PerfectFor = v
		in.MatchedFilters = append(in.MatchedFilters, labelPerfectFor+v)
	}
	if v, ok := firstMatch(q, neighborhoodTable); ok {
		in.Neighborhood = v
		in.MatchedFilters = append(in.MatchedFilters, labelNeighborhood+v)
	}
	if v, ok := firstMatch(q, sortTable); ok {
		in.Sort = intent.Sort(v)
	}

	if n, ok := firstNumber(q); ok && n > 0 {
		in.Limit = min(n, intent.MaxLimit)
	}
	return in
}

func firstMatch(q string, table []slot) (string, bool) {
	for _, s := range table {
		if containsAny(q, s.words) {
			return s.value, true
		}
	}
	return "", false
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if w == "" {
			continue
		}
		if isLatin(w) {
			if containsWord(q, w) {
				return true
			}
			continue
		}
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// containsWord matches w only on word boundaries, so "all" does not fire
// inside "mall". A trailing plural "s" is tolerated.
func containsWord(q, w string) bool {
	for from := 0; from <= len(q)-len(w); {
		i := strings.Index(q[from:], w)
		if i < 0 {
			return false
		}
		start, end := from+i, from+i+len(w)
		if end < len(q) && q[end] == 's' {
			if r, _ := utf8.DecodeRuneInString(q[end+1:]); end+1 == len(q) || !isWordRune(r) {
				end++
			}
		}
		before, _ := utf8.DecodeLastRuneInString(q[:start])
		after, _ := utf8.DecodeRuneInString(q[end:])
		if (start == 0 || !isWordRune(before)) && (end == len(q) || !isWordRune(after)) {
			return true
		}
		from = start + 1
	}
	return false
}

// isLatin reports whether w is plain ASCII, i.e. an English or numeric trigger.
func isLatin(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// numberCap keeps accumulation far from overflow; any value above it clamps anyway.
const numberCap = 1 << 20

// firstNumber returns the value of the first run of ASCII or Arabic-Indic digits.
func firstNumber(q string) (int, bool) {
	n, found := 0, false
	for _, r := range q {
		d, ok := digitValue(r)
		if !ok {
			if found {
				break
			}
			continue
		}
		found = true
		if n < numberCap {
			n = n*10 + d
		}
	}
	return n, found
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= '٠' && r <= '٩':
		return int(r - '٠'), true
	case r >= '۰' && r <= '۹':
		return int(r - '۰'), true
	}
	return 0, false
}
