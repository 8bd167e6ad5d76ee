// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (state, derive, service, handler).
package domain

import "time"

// TripProfile holds the trip-level scalars a user configures once and reads
// everywhere: destination, date range, budget, traveler count, interests,
// and free-form notes.
//
// A Travelers value below 1 is stored as given and coerced to 1 at read time
// by the derived-view computations, never rewritten in place.
type TripProfile struct {
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      int       `json:"budget"`
	Travelers   int       `json:"travelers"`
	Interests   []string  `json:"interests"`
	Notes       string    `json:"notes,omitempty"`
}

// DefaultProfile returns the profile a fresh session starts with:
// empty destination, a same-day date range anchored at now, budget 0,
// one traveler, no interests.
func DefaultProfile(now time.Time) TripProfile {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return TripProfile{
		StartDate: today,
		EndDate:   today,
		Travelers: 1,
		Interests: []string{},
	}
}
