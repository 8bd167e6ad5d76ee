package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mverstraete/tripdash/internal/derive"
	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/middleware"
)

// tripPayload is the wire shape of the trip profile. Dates are date-only
// ("2006-01-02") on the wire, carried by openapi_types.Date.
type tripPayload struct {
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Budget      int                `json:"budget"`
	Travelers   int                `json:"travelers"`
	Interests   []string           `json:"interests"`
	Notes       string             `json:"notes,omitempty"`
}

// GetTrip handles GET /trip.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	profile, err := s.trips.Get(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, profileToPayload(profile))
}

// SaveTrip handles PUT /trip. The body replaces every profile field; there
// is no partial update.
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	var body tripPayload
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	sess := middleware.SessionFrom(r.Context())
	saved, err := s.trips.Save(r.Context(), sess, payloadToProfile(body))
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, profileToPayload(saved))
}

// ResetTrip handles POST /trip/reset: defaults restored, items cleared.
func (s *Server) ResetTrip(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	profile, err := s.trips.Reset(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, profileToPayload(profile))
}

// LoadDemoData handles POST /trip/demo: profile and items replaced by the
// demo fixture.
func (s *Server) LoadDemoData(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	profile, err := s.trips.LoadDemoData(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, profileToPayload(profile))
}

// snapshotResponse is the full derived view served to the dashboard: the
// recomputed snapshot plus the presentational extras (messages, breakdown,
// top-expensive list, demo map point).
type snapshotResponse struct {
	domain.DerivedSnapshot
	Breakdown        domain.Breakdown       `json:"breakdown"`
	TopExpensive     []domain.ItineraryItem `json:"top_expensive"`
	ReadinessMessage string                 `json:"readiness_message"`
	BudgetHealth     string                 `json:"budget_health"`
	BudgetMessage    string                 `json:"budget_message"`
	MapPoint         domain.MapPoint        `json:"map_point"`
}

// topExpensiveCount is how many items the snapshot's top-expensive list
// carries; the statistics page defaults to five.
const topExpensiveCount = 5

// GetSnapshot handles GET /trip/snapshot. Everything in the response is
// recomputed from the current state on each call; nothing is cached.
func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	profile := sess.Profile()
	items := sess.Items()

	snap := derive.Snapshot(profile, items)
	health, msg := budgetHealth(profile.Budget, snap.RemainingBudget)

	writeJSON(w, http.StatusOK, snapshotResponse{
		DerivedSnapshot:  snap,
		Breakdown:        derive.Breakdown(profile, snap.TotalPlannedCost),
		TopExpensive:     derive.TopExpensive(items, topExpensiveCount),
		ReadinessMessage: readinessMessage(snap.ReadinessScore),
		BudgetHealth:     health,
		BudgetMessage:    msg,
		MapPoint:         domain.DemoMapPoint(),
	})
}

// readinessMessage maps the readiness score onto the three qualitative
// dashboard messages.
func readinessMessage(score float64) string {
	switch {
	case score < 0.5:
		return "Fill in the basics (destination, dates, budget) and you are on your way."
	case score < 1.0:
		return "Nice! Add a few itinerary items to finish your trip."
	default:
		return "Trip readiness: 100%."
	}
}

// budgetHealth maps budget and remaining onto a health code and message.
// The near-budget threshold is a fixed 100 currency units.
func budgetHealth(budget, remaining int) (code, message string) {
	switch {
	case budget <= 0:
		return "no_budget", "Budget is €0. Set a budget in the trip settings."
	case remaining < 0:
		return "over_budget", "You are over budget. Cut items or raise the budget."
	case remaining < 100:
		return "near_budget", "You are close to your budget."
	default:
		return "healthy", "Budget looks healthy."
	}
}

// --- mapping helpers --------------------------------------------------------

func payloadToProfile(p tripPayload) domain.TripProfile {
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	return domain.TripProfile{
		Destination: p.Destination,
		StartDate:   p.StartDate.Time,
		EndDate:     p.EndDate.Time,
		Budget:      p.Budget,
		Travelers:   p.Travelers,
		Interests:   interests,
		Notes:       p.Notes,
	}
}

func profileToPayload(p domain.TripProfile) tripPayload {
	return tripPayload{
		Destination: p.Destination,
		StartDate:   openapi_types.Date{Time: p.StartDate},
		EndDate:     openapi_types.Date{Time: p.EndDate},
		Budget:      p.Budget,
		Travelers:   p.Travelers,
		Interests:   p.Interests,
		Notes:       p.Notes,
	}
}
