package domain

// Template is a starter activity the planner offers as a prefill for the
// add-item form. Templates are fixed; picking one never mutates state.
type Template struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Cost     int    `json:"cost"`
	Time     string `json:"time"`
}

// templates is the built-in starter catalog.
var templates = []Template{
	{Title: "City walking tour", Category: CategoryActivities, Cost: 25, Time: "10:00"},
	{Title: "Museum visit", Category: CategoryMuseums, Cost: 18, Time: "11:00"},
	{Title: "Lunch at local spot", Category: CategoryFood, Cost: 20, Time: "13:00"},
	{Title: "Public transport day pass", Category: CategoryTransport, Cost: 9, Time: "09:00"},
	{Title: "Sunset viewpoint", Category: CategoryNature, Cost: 0, Time: "19:00"},
	{Title: "Dinner reservation", Category: CategoryFood, Cost: 35, Time: "20:00"},
}

// Templates returns a copy of the starter catalog so callers cannot mutate it.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}
