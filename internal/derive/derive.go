// Package derive computes read-only projections over a trip profile and an
// itinerary item sequence: day counts, cost aggregations, the readiness
// score, and sorted/filtered views.
//
// Every function here is pure and total: inputs are never mutated, and
// malformed data (negative cost, missing category, zero day) is coerced to
// a safe default instead of raising an error.
package derive

import (
	"strings"

	"github.com/mverstraete/tripdash/internal/domain"
)

// DaySpan returns the raw inclusive length of the trip's date range in days,
// without any floor. An inverted range yields a value below 1.
func DaySpan(p domain.TripProfile) int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// DayCount returns the day-selector bound: the date-range span floored at 1.
// The floor covers the degenerate same-day range; inverted ranges are
// rejected at the profile-save boundary before they can reach this function.
func DayCount(p domain.TripProfile) int {
	if d := DaySpan(p); d > 1 {
		return d
	}
	return 1
}

// Travelers returns the profile's traveler count coerced to at least 1.
func Travelers(p domain.TripProfile) int {
	if p.Travelers > 1 {
		return p.Travelers
	}
	return 1
}

// costOf coerces a malformed (negative) cost to 0 before aggregation.
func costOf(it domain.ItineraryItem) int {
	if it.Cost < 0 {
		return 0
	}
	return it.Cost
}

// TotalCost sums the cost of every item.
func TotalCost(items []domain.ItineraryItem) int {
	total := 0
	for _, it := range items {
		total += costOf(it)
	}
	return total
}

// PerDayTotals groups items by day and sums cost per group.
// Items with a missing day land in group 0.
func PerDayTotals(items []domain.ItineraryItem) map[int]int {
	totals := map[int]int{}
	for _, it := range items {
		totals[it.Day] += costOf(it)
	}
	return totals
}

// PerCategoryTotals groups items by category and sums cost per group.
// Items with an empty category are counted under "Other".
func PerCategoryTotals(items []domain.ItineraryItem) map[string]int {
	totals := map[string]int{}
	for _, it := range items {
		totals[domain.NormalizeCategory(it.Category)] += costOf(it)
	}
	return totals
}

// RemainingBudget returns budget minus planned total. May go negative;
// an over-budget plan is a state to report, not an error.
func RemainingBudget(budget, plannedTotal int) int {
	return budget - plannedTotal
}

// BudgetPerPerson divides the budget across travelers, flooring the result.
// A traveler count below 1 is coerced to 1.
func BudgetPerPerson(budget, travelers int) int {
	if travelers < 1 {
		travelers = 1
	}
	return budget / travelers
}

// Breakdown computes the per-person and per-day split of budget and planned
// cost. Per-day figures use the floored day count.
func Breakdown(p domain.TripProfile, plannedTotal int) domain.Breakdown {
	travelers := Travelers(p)
	days := DayCount(p)
	return domain.Breakdown{
		BudgetPerPerson:  p.Budget / travelers,
		PlannedPerPerson: plannedTotal / travelers,
		BudgetPerDay:     p.Budget / days,
		PlannedPerDay:    plannedTotal / days,
	}
}

// ReadinessScore is the four-factor completeness metric in [0,1]: one point
// each for a non-empty destination, a positive budget, a positive day span,
// and a non-empty item list.
//
// The score is monotonic: filling in any factor never lowers it.
func ReadinessScore(p domain.TripProfile, items []domain.ItineraryItem) float64 {
	score := 0
	if p.Destination != "" {
		score++
	}
	if p.Budget > 0 {
		score++
	}
	if DaySpan(p) > 0 {
		score++
	}
	if len(items) > 0 {
		score++
	}
	return float64(score) / 4
}

// TopExpensive returns up to n items ordered by cost descending, ties keeping
// their prior relative order. The input is not modified.
func TopExpensive(items []domain.ItineraryItem, n int) []domain.ItineraryItem {
	sorted := SortItems(items, SortCostDesc)
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// categoryRules drive the presentation-only title categorizer.
// First matching rule wins, in listed order.
var categoryRules = []struct {
	label    string
	keywords []string
}{
	{"Stay", []string{"hotel", "hostel", "airbnb"}},
	{domain.CategoryTransport, []string{"train", "metro", "flight", "bus", "taxi"}},
	{domain.CategoryActivities, []string{"museum", "ticket", "tour"}},
	{domain.CategoryFood, []string{"lunch", "dinner", "ramen", "food", "pizza"}},
}

// Categorize guesses a category label from an item title. It is only a
// display fallback for items without an explicit category; when an item
// carries one, the explicit field wins. Note the "Stay" label exists only
// here, not in the selectable category catalog.
func Categorize(title string) string {
	t := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.label
			}
		}
	}
	return domain.CategoryOther
}

// Snapshot assembles the full derived view of the given state.
func Snapshot(p domain.TripProfile, items []domain.ItineraryItem) domain.DerivedSnapshot {
	planned := TotalCost(items)
	return domain.DerivedSnapshot{
		DayCount:          DayCount(p),
		ItemCount:         len(items),
		TotalPlannedCost:  planned,
		RemainingBudget:   RemainingBudget(p.Budget, planned),
		BudgetPerPerson:   BudgetPerPerson(p.Budget, p.Travelers),
		PerDayTotals:      PerDayTotals(items),
		PerCategoryTotals: PerCategoryTotals(items),
		ReadinessScore:    ReadinessScore(p, items),
	}
}
