package intent

import (
	"strings"

	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/order"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/result"
	"github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// controlWords are sort triggers; they shape the order but say nothing about
// which places are wanted.
var controlWords = map[string]bool{}

func init() {
	for _, s := range sortTable {
		for _, w := range s.words {
			for _, tok := range arabic.Tokens(w) {
				controlWords[tok] = true
			}
		}
	}
}

// freeText answers a query that filled no slot with a relevance search over
// its remaining terms. ok is false when only sort or number words were given,
// leaving the attribute path in charge.
func freeText(idx *index.Index, query string, in intent.Intent) (places []place.Place, ok bool) {
	terms := residualTerms(query)
	if len(terms) == 0 {
		return nil, false
	}

	ranked := search.Sort(search.Search(idx, strings.Join(terms, " "), nil), order.Relevance)
	limit := in.Limit
	if limit <= 0 {
		limit = intent.DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return result.Places(ranked), true
}

func residualTerms(query string) []string {
	var out []string
	for _, tok := range arabic.Tokens(query) {
		if controlWords[tok] || isNumber(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func isNumber(tok string) bool {
	for _, r := range tok {
		if _, ok := digitValue(r); !ok {
			return false
		}
	}
	return tok != ""
}
