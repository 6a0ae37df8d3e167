package intent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

// NoResultsMessage is the reply when nothing matched.
const NoResultsMessage = "ما لقيت نتائج تطابق بحثك 😕 جرب تغير الفلاتر"

const genericNoun = "مكان"

// Respond describes what was understood and the top result.
func Respond(in intent.Intent, results []place.Place) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	var parts []string
	if in.Category != "" {
		parts = append(parts, in.Category)
	}
	if in.Cuisine != "" {
		parts = append(parts, in.Cuisine)
	}
	if in.Neighborhood != "" {
		parts = append(parts, "بـ"+in.Neighborhood)
	}
	if label := in.Price.Label(); label != "" {
		parts = append(parts, label)
	}
	if in.FreeOnly {
		parts = append(parts, place.PriceFree.Label())
	}
	if in.NewOnly {
		parts = append(parts, labelNew)
	}
	if in.Audience != "" {
		parts = append(parts, "لـ"+in.Audience)
	}
	if in.PerfectFor != "" {
		parts = append(parts, "لـ"+in.PerfectFor)
	}
	if len(parts) == 0 {
		parts = append(parts, genericNoun)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "لقيت %d %s", len(results), strings.Join(parts, " "))

	best := results[0]
	fmt.Fprintf(&b, "، أفضلها \"%s\"", best.NameAr)
	if best.Rating > 0 {
		fmt.Fprintf(&b, " (%s⭐)", strconv.FormatFloat(best.Rating, 'f', -1, 64))
	}
	if best.PriceLevel.IsValid() {
		b.WriteString(" " + string(best.PriceLevel))
	}
	return b.String()
}
