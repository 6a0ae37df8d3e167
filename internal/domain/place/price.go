package place

import "strings"

// PriceLevel is a place's price tier.
type PriceLevel string

// Price tiers in ascending order. PriceUnknown marks an absent value; any other
// string outside Levels is an unrecognized one and ranks the same way.
const (
	PriceUnknown   PriceLevel = ""
	PriceFree      PriceLevel = "مجاني"
	PriceBudget    PriceLevel = "$"
	PriceModerate  PriceLevel = "$$"
	PriceExpensive PriceLevel = "$$$"
	PriceLuxury    PriceLevel = "$$$$"
)

// legacyFree is the English spelling some catalog rows still use.
const legacyFree = "free"

// Levels lists the known tiers in ascending order.
var Levels = []PriceLevel{PriceFree, PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}

// midRank places unpriced records between $$ and $$$ so price sorts do not push
// them to either end.
const midRank = 2.5

// ParsePrice maps a raw catalog value onto a tier. Unrecognized values yield PriceUnknown.
func ParsePrice(raw string) PriceLevel {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, legacyFree) {
		return PriceFree
	}
	for _, l := range Levels {
		if s == string(l) {
			return l
		}
	}
	return PriceUnknown
}

// IsValid reports whether l is one of the known tiers.
func (l PriceLevel) IsValid() bool {
	return l != PriceUnknown && ParsePrice(string(l)) == l
}

// IsFree reports whether l is the free tier.
func (l PriceLevel) IsFree() bool { return l == PriceFree }

// Rank returns the position of l in the price order.
func (l PriceLevel) Rank() float64 {
	switch l {
	case PriceFree:
		return 0
	case PriceBudget:
		return 1
	case PriceModerate:
		return 2
	case PriceExpensive:
		return 3
	case PriceLuxury:
		return 4
	}
	return midRank
}

// Label returns the Arabic word for the tier.
func (l PriceLevel) Label() string {
	switch l {
	case PriceFree:
		return "مجاني"
	case PriceBudget:
		return "رخيص"
	case PriceModerate:
		return "متوسط"
	case PriceExpensive:
		return "غالي"
	case PriceLuxury:
		return "فاخر"
	}
	return ""
}

// KeepPrice is ParsePrice for catalog input: an unrecognized value is kept
// verbatim so it round-trips, and ranks as unknown.
func KeepPrice(raw string) PriceLevel {
	if l := ParsePrice(raw); l != PriceUnknown {
		return l
	}
	return PriceLevel(strings.TrimSpace(raw))
}

// UnmarshalText accepts the legacy "free" synonym.
func (l *PriceLevel) UnmarshalText(b []byte) error {
	*l = KeepPrice(string(b))
	return nil
}
