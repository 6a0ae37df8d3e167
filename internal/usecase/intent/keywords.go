package intent

import (
	"github.com/kailas-cloud/wainnrooh/internal/arabic"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
)

// slot maps a canonical value to its trigger words. Tables are ordered slices
// because the first matching key wins.
type slot struct {
	value string
	words []string
}

var (
	freeWords = []string{"مجان", "ببلاش", "free"}
	newWords  = []string{"جديد", "new", "أحدث"}
)

var categoryTable = []slot{
	{"مطعم", []string{"مطعم", "مطاعم", "أكل", "عشاء", "غداء", "فطور", "restaurant", "restaurants", "food", "dinner", "lunch", "breakfast", "dining"}},
	{"كافيه", []string{"كافيه", "كوفي", "قهوة", "كابتشينو", "لاتيه", "كافيهات", "cafe", "coffee", "cappuccino", "latte", "espresso", "coffeeshop"}},
	{"ترفيه", []string{"ترفيه", "ملاهي", "ألعاب", "سينما", "بولينج", "كارتنج", "ترامبولين", "entertainment", "games", "cinema", "bowling", "fun", "activities", "escape"}},
	{"حلويات", []string{"حلويات", "حلا", "كنافة", "آيسكريم", "دونات", "كيك", "شوكولاتة", "dessert", "sweets", "ice cream", "donuts", "cake", "chocolate", "bakery"}},
	{"تسوق", []string{"تسوق", "محلات", "محل", "shopping", "shop", "store", "سوق"}},
	{"فنادق", []string{"فندق", "فنادق", "hotel", "hotels", "إقامة", "نزل", "accommodation"}},
	{"طبيعة", []string{"طبيعة", "حديقة", "حدائق", "منتزه", "وادي", "تخييم", "مشي", "park", "garden", "nature", "hiking", "camping", "trail", "outdoor"}},
	{"شاليه", []string{"شاليه", "شاليهات", "استراحة", "استراحات", "مزرعة", "chalet", "resort", "farm", "glamping"}},
	{"فعاليات", []string{"فعالية", "فعاليات", "حفلة", "حفلات", "موسم", "event", "events", "concert", "festival", "season"}},
	{"متاحف", []string{"متحف", "متاحف", "معرض", "تاريخي", "ثقافي", "museum", "gallery", "historical", "cultural", "heritage"}},
	{"مولات", []string{"مول", "مولات", "مركز تجاري", "mall", "shopping center"}},
}

// cuisineCategory is implied when a cuisine matches and no category did.
const cuisineCategory = "مطعم"

var cuisineTable = []slot{
	{"ياباني", []string{"ياباني", "سوشي", "رامن", "japanese", "sushi", "ramen"}},
	{"إيطالي", []string{"إيطالي", "بيتزا", "باستا", "italian", "pizza", "pasta"}},
	{"لبناني", []string{"لبناني", "مشاوي", "حمص", "lebanese", "hummus", "grill"}},
	{"سعودي", []string{"سعودي", "كبسة", "مندي", "جريش", "saudi", "kabsa", "mandi"}},
	{"هندي", []string{"هندي", "كاري", "برياني", "indian", "curry", "biryani"}},
	{"تركي", []string{"تركي", "كباب", "شاورما", "turkish", "kebab", "shawarma"}},
	{"صيني", []string{"صيني", "نودلز", "chinese", "noodles", "dim sum"}},
	{"كوري", []string{"كوري", "korean", "bibimbap"}},
	{"مكسيكي", []string{"مكسيكي", "تاكو", "mexican", "tacos", "burrito"}},
	{"أمريكي", []string{"أمريكي", "برجر", "ستيك", "american", "burger", "steak"}},
	{"بحري", []string{"بحري", "سمك", "أسماك", "seafood", "fish", "shrimp"}},
	{"فطور", []string{"فطور", "breakfast", "brunch", "eggs"}},
	{"برجر", []string{"برجر", "burger", "burgers", "smash"}},
	{"بيتزا", []string{"بيتزا", "pizza"}},
}

// Free words are deliberately absent: they only set the free flag.
var priceTable = []slot{
	{"$", []string{"رخيص", "اقتصادي", "حلو السعر", "cheap", "affordable", "budget", "inexpensive"}},
	{"$$", []string{"متوسط", "معقول", "عادي", "moderate", "mid-range", "reasonable"}},
	{"$$$", []string{"غالي", "فاخر", "راقي", "expensive", "upscale", "fine dining", "premium"}},
	{"$$$$", []string{"فخم", "أفخم", "luxury", "luxurious", "exclusive"}},
}

var audienceTable = []slot{
	{"عوائل", []string{"عوائل", "عائلة", "أطفال", "أولاد", "بنات", "kids", "family", "families", "children"}},
	{"شباب", []string{"شباب", "أصدقاء", "رجال", "guys", "friends", "hangout"}},
	{"أزواج", []string{"رومانسي", "زوجين", "رومانسية", "date", "romantic", "couples", "anniversary"}},
	{"الكل", []string{"الكل", "عام", "everyone", "all"}},
}

var perfectForTable = []slot{
	{"دراسة", []string{"دراسة", "مذاكرة", "لابتوب", "عمل", "study", "work", "laptop", "quiet", "هادي", "هادئ"}},
	{"صور", []string{"صور", "تصوير", "انستقرام", "photo", "instagram", "instagrammable", "aesthetic"}},
	{"رومانسي", []string{"رومانسي", "رومانسية", "date", "romantic", "candle", "كاندل"}},
	{"أطفال", []string{"أطفال", "ألعاب أطفال", "kids", "playground", "play area"}},
	{"فطور", []string{"فطور", "صباح", "morning", "breakfast", "brunch"}},
	{"سهرة", []string{"سهر", "سهرة", "ليل", "night", "late", "open late", "24"}},
}

var neighborhoodTable = []slot{
	{"العليا", []string{"العليا", "عليا", "olaya", "al olaya"}},
	{"الملقا", []string{"الملقا", "ملقا", "malqa", "al malqa"}},
	{"حطين", []string{"حطين", "hittin", "al hittin"}},
	{"الياسمين", []string{"الياسمين", "ياسمين", "yasmin", "al yasmin"}},
	{"النرجس", []string{"النرجس", "نرجس", "narjis", "al narjis"}},
	{"الربيع", []string{"الربيع", "ربيع", "rabee", "al rabee"}},
	{"الصحافة", []string{"الصحافة", "صحافة", "sahafa"}},
	{"الورود", []string{"الورود", "ورود", "wurud"}},
	{"KAFD", []string{"kafd", "كافد", "المالي", "حي المال"}},
	{"الدرعية", []string{"الدرعية", "درعية", "diriyah"}},
	{"الربوة", []string{"الربوة", "rabwa"}},
	{"النخيل", []string{"النخيل", "nakheel"}},
	{"السليمانية", []string{"السليمانية", "سليمانية", "sulaymaniyah"}},
	{"المربع", []string{"المربع", "murabba"}},
	{"الدبلوماسي", []string{"الدبلوماسي", "diplomasi", "diplomatic quarter"}},
	{"الروضة", []string{"الروضة", "rawdah"}},
	{"الريان", []string{"الريان", "rayyan"}},
	{"الشفا", []string{"الشفا", "shifa"}},
}

var sortTable = []slot{
	{string(intent.SortRatingDesc), []string{"أفضل", "أحسن", "أعلى تقييم", "best", "top", "highest rated", "top rated"}},
	{string(intent.SortPriceAsc), []string{"أرخص", "أقل سعر", "cheapest", "lowest price"}},
	{string(intent.SortPriceDesc), []string{"أغلى", "أعلى سعر", "most expensive"}},
	{string(intent.SortNewest), []string{"جديد", "جديدة", "أحدث", "new", "newest", "latest", "recently opened"}},
}

// Tables are matched in normalized form.
func init() {
	freeWords = normalizeWords(freeWords)
	newWords = normalizeWords(newWords)
	for _, t := range [][]slot{
		categoryTable, cuisineTable, priceTable, audienceTable,
		perfectForTable, neighborhoodTable, sortTable,
	} {
		for i := range t {
			t[i].words = normalizeWords(t[i].words)
		}
	}
}

func normalizeWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = arabic.Normalize(w)
	}
	return out
}

// aliases returns the normalized trigger words of a neighborhood, or nil.
func aliases(neighborhood string) []string {
	return wordsOf(neighborhoodTable, neighborhood)
}

// cuisineWords returns the normalized trigger words of a cuisine, or nil.
func cuisineWords(cuisine string) []string {
	return wordsOf(cuisineTable, cuisine)
}

func wordsOf(table []slot, value string) []string {
	for _, s := range table {
		if s.value == value {
			return s.words
		}
	}
	return nil
}
