package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ItineraryItem is one planned activity on the trip.
// Day is a 1-indexed offset into the trip's day range. It is deliberately
// not range-checked against the current date range: shortening the trip
// leaves items on now-out-of-range days intact.
//
// Time is free-form text, expected "HH:MM" but never validated as a real
// clock time. Ordering normalizes "H:MM" to "0H:MM" and otherwise compares
// the string as-is.
//
// ID is assigned once at creation and is the only stable identity an item
// has. View operations (sort, filter) carry it through so mutations can
// address an item regardless of where it currently sits in a projection.
type ItineraryItem struct {
	ID       uuid.UUID `json:"id"`
	Day      int       `json:"day"`
	Time     string    `json:"time"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Cost     int       `json:"cost"`
	Tags     []string  `json:"tags"`
}

// SplitTags turns a comma-separated tag string into a trimmed slice,
// dropping empty entries. Always returns a non-nil slice.
func SplitTags(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
