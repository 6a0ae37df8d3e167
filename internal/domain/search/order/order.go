package order

// Key selects how search results are ordered.
type Key string

// Sort key constants.
const (
	// Relevance orders by engine score, highest first.
	Relevance   Key = "relevance"
	RatingDesc  Key = "rating-desc"
	RatingAsc   Key = "rating-asc"
	ReviewsDesc Key = "reviews-desc"
	PriceAsc    Key = "price-asc"
	PriceDesc   Key = "price-desc"
	// Name orders by Arabic name using Arabic collation.
	Name     Key = "name"
	Trending Key = "trending"
	// BestValue orders by rating per price tier, highest first.
	BestValue Key = "best-value"
	// Random shuffles uniformly; the resulting order is not reproducible.
	Random Key = "random"
)

// Keys lists every supported key.
var Keys = []Key{Relevance, RatingDesc, RatingAsc, ReviewsDesc, PriceAsc, PriceDesc, Name, Trending, BestValue, Random}

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	for _, v := range Keys {
		if k == v {
			return true
		}
	}
	return false
}
