package derive

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mverstraete/tripdash/internal/domain"
)

// SortMode selects an item ordering for projections and sort-commits.
type SortMode string

const (
	// SortDayTime orders by (day asc, normalized time asc, title asc).
	SortDayTime SortMode = "day_time"
	// SortCostDesc orders by cost descending.
	SortCostDesc SortMode = "cost_desc"
	// SortTitleAsc orders by case-insensitive title ascending.
	SortTitleAsc SortMode = "title_asc"
)

// ParseSortMode maps a wire string onto a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortDayTime, SortCostDesc, SortTitleAsc:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown sort mode %q", domain.ErrValidation, s)
}

// NormalizeTime left-pads an "H:MM"-shaped string to "0H:MM" so string
// comparison orders it correctly. Anything else passes through unchanged;
// there is no real time parsing or validation.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if len(t) == 4 && t[1] == ':' {
		return "0" + t
	}
	return t
}

// SortItems returns a sorted copy of items. All modes are stable: equal
// elements keep their prior relative order. The input is never modified.
func SortItems(items []domain.ItineraryItem, mode SortMode) []domain.ItineraryItem {
	out := make([]domain.ItineraryItem, len(items))
	copy(out, items)

	switch mode {
	case SortCostDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return costOf(out[i]) > costOf(out[j])
		})
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	default: // SortDayTime
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.Day != b.Day {
				return a.Day < b.Day
			}
			at, bt := NormalizeTime(a.Time), NormalizeTime(b.Time)
			if at != bt {
				return at < bt
			}
			return a.Title < b.Title
		})
	}
	return out
}

// FilterByDay returns the items whose day exactly equals day, preserving
// order. It allocates a fresh slice; the input is never modified.
func FilterByDay(items []domain.ItineraryItem, day int) []domain.ItineraryItem {
	out := []domain.ItineraryItem{}
	for _, it := range items {
		if it.Day == day {
			out = append(out, it)
		}
	}
	return out
}
