package domain

// Itinerary item categories. CategoryOther doubles as the coercion default
// for items whose category field is empty.
const (
	CategoryActivities = "Activities"
	CategoryMuseums    = "Museums"
	CategoryFood       = "Food"
	CategoryTransport  = "Transport"
	CategoryNature     = "Nature"
	CategoryShopping   = "Shopping"
	CategoryNightlife  = "Nightlife"
	CategoryOther      = "Other"
)

// Categories lists every selectable item category, in display order.
var Categories = []string{
	CategoryActivities,
	CategoryMuseums,
	CategoryFood,
	CategoryTransport,
	CategoryNature,
	CategoryShopping,
	CategoryNightlife,
	CategoryOther,
}

// Interests is the fixed catalog of trip interests a profile may carry.
// Order matters only for display; membership is what save enforces.
var Interests = []string{
	"Food", "Culture", "Nature", "Nightlife", "Museums",
	"Shopping", "Tech", "Beaches", "History",
}

// NormalizeCategory maps an empty category to CategoryOther and passes
// everything else through unchanged. Unknown non-empty values are kept
// as-is rather than rejected.
func NormalizeCategory(c string) string {
	if c == "" {
		return CategoryOther
	}
	return c
}

// KnownInterest reports whether s is in the interest catalog.
func KnownInterest(s string) bool {
	for _, v := range Interests {
		if v == s {
			return true
		}
	}
	return false
}

// FilterInterests returns the subset of in that is in the interest catalog,
// preserving input order and dropping duplicates. Unknown entries are
// silently discarded. Always returns a non-nil slice.
func FilterInterests(in []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, s := range in {
		if KnownInterest(s) && !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}
