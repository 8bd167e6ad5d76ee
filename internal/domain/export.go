package domain

// ExportRow is a single row in the tabular export: one row per itinerary
// item, in storage order.
//
// Tags is the item's tag slice verbatim. Callers that need a joined string
// (e.g. CSV) should join with "|" so a row stays on one line regardless of
// commas inside tags.
type ExportRow struct {
	Day      int      `json:"day"`
	Time     string   `json:"time"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Cost     int      `json:"cost"`
	Tags     []string `json:"tags"`
}

// ExportDocument is the structured export: the full serializable unit of
// one session's state, profile plus item list.
type ExportDocument struct {
	Trip  TripProfile     `json:"trip"`
	Items []ItineraryItem `json:"items"`
}
