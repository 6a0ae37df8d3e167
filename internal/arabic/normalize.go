// Package arabic canonicalizes Arabic text so that spelling variants compare equal.
//
// Normalize is the single comparison form used by the index, the query engine,
// filters and auto-suggest. Two strings are "the same for search" iff their
// normalized forms are equal.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Letters folded onto a single canonical form.
const (
	Alef           = 'ا'
	AlefMadda      = 'آ'
	AlefHamzaAbove = 'أ'
	AlefHamzaBelow = 'إ'
	AlefWasla      = 'ٱ'
	TehMarbuta     = 'ة'
	Heh            = 'ه'
	AlefMaksura    = 'ى'
	Yeh            = 'ي'
	WawHamza       = 'ؤ'
	Waw            = 'و'
	YehHamza       = 'ئ'
	Tatweel        = 'ـ'
)

// marks covers harakat, shadda/sukun, superscript alef and Quranic annotation signs.
var marks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x0640, Hi: 0x0640, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06DC, Stride: 1},
		{Lo: 0x06DF, Hi: 0x06E4, Stride: 1},
		{Lo: 0x06E7, Hi: 0x06E8, Stride: 1},
		{Lo: 0x06EA, Hi: 0x06ED, Stride: 1},
	},
}

var (
	stripMarks  = runes.Remove(runes.In(marks))
	foldLetters = runes.Map(fold)
)

func fold(r rune) rune {
	switch r {
	case AlefMadda, AlefHamzaAbove, AlefHamzaBelow, AlefWasla:
		return Alef
	case TehMarbuta:
		return Heh
	case AlefMaksura, YehHamza:
		return Yeh
	case WawHamza:
		return Waw
	}
	return r
}

// Normalize lowercases text, folds alef/teh-marbuta/yeh/hamza variants, removes
// diacritics and tatweel, and collapses whitespace. Idempotent; "" stays "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// transform.Chain keeps internal buffers, so it is built per call.
	t := transform.Chain(stripMarks, foldLetters)
	out, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		out = strings.ToLower(text)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Tokens normalizes text and splits it on whitespace and punctuation.
// Input made only of separators yields no tokens.
func Tokens(text string) []string {
	return strings.FieldsFunc(Normalize(text), isSeparator)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// Contains reports whether normalized haystack contains the normalized form of needle.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// Equal reports whether a and b are the same for search purposes.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
