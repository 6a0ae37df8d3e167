package search

import (
	"testing"

	"github.com/kailas-cloud/wainnrooh/internal/domain/index"
	"github.com/kailas-cloud/wainnrooh/internal/domain/place"
	"github.com/kailas-cloud/wainnrooh/internal/domain/suggestion"
)

func suggestIndex() *index.Index {
	return index.Build([]place.Place{
		{ID: "1", NameAr: "مقهى الملقا", Category: "كافيه", CategoryAr: "كافيه", Neighborhood: "الملقا", Rating: 4.4},
		{ID: "2", NameAr: "برجر الملقا", Category: "مطعم", CategoryAr: "مطعم", Neighborhood: "الملقا"},
		{ID: "3", NameAr: "حديقة الملك", Category: "طبيعة", CategoryAr: "طبيعة", Neighborhood: "الملك فهد"},
		{ID: "4", NameAr: "متحف", Category: "متاحف", CategoryAr: "متحف", Neighborhood: place.UnspecifiedNeighborhood},
		{ID: "5", NameAr: "سوق", Category: "سوق شعبي", Neighborhood: "الملقا الشمالي"},
	})
}

func TestSuggest_MinimumLength(t *testing.T) {
	idx := suggestIndex()
	for _, q := range []string{"", "م", " م ", "َ"} {
		if got := Suggest(idx, q, 10); len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want empty", q, got)
		}
	}
}

func TestSuggest_NonPositiveLimit(t *testing.T) {
	idx := suggestIndex()
	for _, n := range []int{0, -1} {
		if got := Suggest(idx, "الملقا", n); len(got) != 0 {
			t.Errorf("Suggest(limit=%d) = %v", n, got)
		}
	}
}

func TestSuggest_PriorityOrder(t *testing.T) {
	got := Suggest(suggestIndex(), "الملقا", 10)

	want := []struct {
		kind suggestion.Kind
		text string
	}{
		{suggestion.KindPlace, "مقهى الملقا"},
		{suggestion.KindPlace, "برجر الملقا"},
		{suggestion.KindNeighborhood, "الملقا"},
		{suggestion.KindNeighborhood, "الملقا الشمالي"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions: %+v", len(got), got)
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Text != w.text {
			t.Errorf("[%d] = %s %q, want %s %q", i, got[i].Kind, got[i].Text, w.kind, w.text)
		}
	}
}

func TestSuggest_CapRespected(t *testing.T) {
	idx := suggestIndex()
	for n := 1; n <= 5; n++ {
		if got := Suggest(idx, "الملقا", n); len(got) > n {
			t.Errorf("Suggest(limit=%d) returned %d", n, len(got))
		}
	}
}

func TestSuggest_PlaceFields(t *testing.T) {
	got := Suggest(suggestIndex(), "مقهي", 5)
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	s := got[0]
	if s.PlaceID != "1" || s.Icon != "☕" || s.Subtitle != "الملقا · كافيه" {
		t.Errorf("unexpected suggestion %+v", s)
	}
	if s.Rating == nil || *s.Rating != 4.4 {
		t.Errorf("Rating = %v, want 4.4", s.Rating)
	}

	got = Suggest(suggestIndex(), "برجر", 5)
	if len(got) != 1 || got[0].Rating != nil {
		t.Errorf("unrated place should carry no rating: %+v", got)
	}
}

func TestSuggest_Categories(t *testing.T) {
	got := Suggest(suggestIndex(), "متحف", 5)
	// name match first, then the category label; sentinel neighborhood is never suggested
	if len(got) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got[1].Kind != suggestion.KindCategory || got[1].Text != "متحف" || got[1].Icon != "🏛️" {
		t.Errorf("category suggestion = %+v", got[1])
	}

	got = Suggest(suggestIndex(), "شعبي", 5)
	if len(got) != 1 || got[0].Icon != suggestion.CategoryIcon || got[0].PlaceID != "" {
		t.Errorf("unknown category suggestion = %+v", got)
	}
}

func TestSuggest_SkipsUnspecifiedNeighborhood(t *testing.T) {
	for _, s := range Suggest(suggestIndex(), "غير محدد", 5) {
		if s.Kind == suggestion.KindNeighborhood {
			t.Errorf("sentinel neighborhood suggested: %+v", s)
		}
	}
}
