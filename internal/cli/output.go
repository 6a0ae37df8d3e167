package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// placeLine renders one place as "name · neighborhood · label · rating⭐ · price".
func placeLine(p *place.Place) string {
	parts := []string{p.NameAr}
	if p.HasNeighborhood() {
		parts = append(parts, p.Neighborhood)
	}
	parts = append(parts, p.CategoryLabel())
	if p.Rating > 0 {
		parts = append(parts, fmt.Sprintf("%.1f⭐ (%d)", p.Rating, p.ReviewCount))
	}
	if label := p.PriceLevel.Label(); label != "" {
		parts = append(parts, label)
	}
	return strings.Join(parts, " · ")
}
