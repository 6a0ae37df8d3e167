// Package category holds display metadata for place categories.
// Unknown categories resolve to generic values.
package category

// Fallbacks for categories missing from the tables.
const (
	DefaultIcon  = "📍"
	DefaultLabel = "أخرى"
)

var icons = map[string]string{
	"مطعم":    "🍽️",
	"كافيه":   "☕",
	"ترفيه":   "🎭",
	"تسوق":    "🛍️",
	"طبيعة":   "🏞️",
	"حلويات":  "🍰",
	"فعاليات": "🎪",
	"شاليه":   "🏕️",
	"فنادق":   "🏨",
	"مولات":   "🛒",
	"متاحف":   "🏛️",
	"أخرى":    "📍",

	"restaurant": "🍽️",
	"cafe":       "☕",
	"activity":   "🎭",
}

var labels = map[string]string{
	"مطعم":    "مطعم",
	"كافيه":   "كافيه",
	"ترفيه":   "ترفيه",
	"تسوق":    "تسوق",
	"طبيعة":   "طبيعة",
	"حلويات":  "حلويات",
	"فعاليات": "فعاليات",
	"شاليه":   "شاليه",
	"فنادق":   "فندق",
	"مولات":   "مول",
	"متاحف":   "متحف",
	"أخرى":    "أخرى",

	"restaurant": "مطعم",
	"cafe":       "كافيه",
	"activity":   "ترفيه",
}

// Icon returns the emoji shown next to a category.
func Icon(code string) string {
	if i, ok := icons[code]; ok {
		return i
	}
	return DefaultIcon
}

// Label returns the Arabic label of a category. Unknown non-empty codes are
// returned as-is so that free-text categories still display.
func Label(code string) string {
	if l, ok := labels[code]; ok {
		return l
	}
	if code != "" {
		return code
	}
	return DefaultLabel
}

// Known reports whether the category has dedicated metadata.
func Known(code string) bool {
	_, ok := icons[code]
	return ok
}
