package handler

import (
	"net/http"
	"strconv"

	"github.com/mverstraete/tripdash/internal/middleware"
	"github.com/mverstraete/tripdash/internal/state"
)

// activityDisplayLimit is the default number of log lines a consumer shows.
const activityDisplayLimit = 10

// GetActivity handles GET /activity: the most recent mutation log lines,
// newest first. ?limit= overrides the default of 10, capped at the retained
// window of 30.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	limit := activityDisplayLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "limit must be a positive number")
			return
		}
		limit = n
	}
	if limit > state.ActivityCap {
		limit = state.ActivityCap
	}

	sess := middleware.SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string][]string{"activity": sess.Activity(limit)})
}
