// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate state
// mutations. Every mutating operation appends one human-readable line to the
// session's activity log.
//
// The session is an explicit argument on every method; there is no ambient
// global state anywhere in this module.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/state"
)

// TripService implements business logic for the trip profile.
type TripService struct{}

// NewTripService constructs a TripService.
func NewTripService() *TripService {
	return &TripService{}
}

// Get returns the current trip profile.
func (s *TripService) Get(ctx context.Context, sess *state.Session) (domain.TripProfile, error) {
	return sess.Profile(), nil
}

// Save replaces all profile fields atomically.
// An end date before the start date is rejected with domain.ErrValidation;
// this is the single boundary where date-range order is enforced.
// Interests outside the fixed catalog are silently dropped.
func (s *TripService) Save(ctx context.Context, sess *state.Session, p domain.TripProfile) (domain.TripProfile, error) {
	if p.EndDate.Before(p.StartDate) {
		return domain.TripProfile{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	p.Interests = domain.FilterInterests(p.Interests)
	sess.SetProfile(p)
	sess.Record(fmt.Sprintf("Trip settings saved: %s • €%d • %d traveler(s)",
		p.Destination, p.Budget, p.Travelers))
	return sess.Profile(), nil
}

// Reset restores the default profile and clears the item store.
func (s *TripService) Reset(ctx context.Context, sess *state.Session) (domain.TripProfile, error) {
	sess.Reset()
	sess.Record("Trip reset to defaults.")
	return sess.Profile(), nil
}

// LoadDemoData overwrites the profile and replaces the item store with a
// fixed three-item fixture, for demonstration.
func (s *TripService) LoadDemoData(ctx context.Context, sess *state.Session) (domain.TripProfile, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	sess.SetProfile(domain.TripProfile{
		Destination: "Brussel",
		StartDate:   today,
		EndDate:     today.AddDate(0, 0, 2),
		Budget:      800,
		Travelers:   2,
		Interests:   []string{"Food", "Museums", "Culture"},
		Notes:       "Demo city break",
	})
	sess.ReplaceAll([]domain.ItineraryItem{
		newItem(1, "10:00", "City walking tour", domain.CategoryActivities, 25, []string{"outdoor"}),
		newItem(1, "13:00", "Lunch at local spot", domain.CategoryFood, 20, []string{"local"}),
		newItem(2, "11:00", "Museum visit", domain.CategoryMuseums, 18, nil),
	})
	sess.Record("Demo data loaded.")
	return sess.Profile(), nil
}
