package domain

// DerivedSnapshot is the set of values computed fresh from the current
// profile and item sequence on every read. Nothing here is stored; the
// derive package rebuilds the whole snapshot per request.
type DerivedSnapshot struct {
	DayCount          int            `json:"day_count"`
	ItemCount         int            `json:"item_count"`
	TotalPlannedCost  int            `json:"total_planned_cost"`
	RemainingBudget   int            `json:"remaining_budget"`
	BudgetPerPerson   int            `json:"budget_per_person"`
	PerDayTotals      map[int]int    `json:"per_day_totals"`
	PerCategoryTotals map[string]int `json:"per_category_totals"`
	ReadinessScore    float64        `json:"readiness_score"`
}

// Breakdown splits budget and planned cost per person and per day.
// All divisions floor; the per-day figures use the floored day count,
// so they are defined even for a degenerate same-day range.
type Breakdown struct {
	BudgetPerPerson  int `json:"budget_per_person"`
	PlannedPerPerson int `json:"planned_per_person"`
	BudgetPerDay     int `json:"budget_per_day"`
	PlannedPerDay    int `json:"planned_per_day"`
}

// MapPoint is the single static demo pin shown on the dashboard map.
// There is no geocoding; the coordinates are a fixed demonstration value.
type MapPoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

// DemoMapPoint returns the fixed dashboard pin.
func DemoMapPoint() MapPoint {
	return MapPoint{Lat: 50.8503, Lon: 4.3517, Label: "Brussel (demo pin)"}
}
