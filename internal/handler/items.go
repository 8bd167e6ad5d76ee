package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mverstraete/tripdash/internal/derive"
	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/middleware"
)

// itemListResponse wraps an item projection together with the store size,
// so clients can tell a filtered view from an empty store.
type itemListResponse struct {
	Items []domain.ItineraryItem `json:"items"`
	Count int                    `json:"count"`
}

// addItemRequest is the add-form payload. Tags arrive as one comma-separated
// string, exactly as typed, and are split server-side.
type addItemRequest struct {
	Day      int    `json:"day"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Cost     int    `json:"cost"`
	Tags     string `json:"tags"`
}

// addItemResponse returns the created item and the new store count.
type addItemResponse struct {
	Item  domain.ItineraryItem `json:"item"`
	Count int                  `json:"count"`
}

// moveItemRequest selects the move direction: -1 is up, +1 is down.
type moveItemRequest struct {
	Direction int `json:"direction"`
}

// sortItemsRequest selects the ordering for a sort-and-commit.
type sortItemsRequest struct {
	Mode string `json:"mode"`
}

// replaceItemsRequest carries a full replacement item sequence.
type replaceItemsRequest struct {
	Items []domain.ItineraryItem `json:"items"`
}

// ListItems handles GET /items.
// Supports ?sort= (day_time, cost_desc, title_asc; default day_time) and
// ?day= (an exact day number, or "all" / absent for no filter).
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	mode := derive.SortDayTime
	if raw := r.URL.Query().Get("sort"); raw != "" {
		parsed, err := derive.ParseSortMode(raw)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		mode = parsed
	}

	var day *int
	if raw := r.URL.Query().Get("day"); raw != "" && raw != "all" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "day must be a number or \"all\"")
			return
		}
		day = &n
	}

	sess := middleware.SessionFrom(r.Context())
	items, err := s.items.List(r.Context(), sess, day, mode)
	if err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, itemListResponse{Items: items, Count: sess.Len()})
}

// AddItem handles POST /items.
func (s *Server) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	sess := middleware.SessionFrom(r.Context())
	item, count, err := s.items.Add(r.Context(), sess,
		body.Day, body.Time, body.Title, body.Category, body.Cost, domain.SplitTags(body.Tags))
	if err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	writeJSON(w, http.StatusCreated, addItemResponse{Item: item, Count: count})
}

// RemoveItem handles DELETE /items/{id}.
func (s *Server) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid item id")
		return
	}

	sess := middleware.SessionFrom(r.Context())
	if err := s.items.RemoveByID(r.Context(), sess, id); err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveLastItem handles DELETE /items/last. Removing from an empty store
// succeeds and changes nothing.
func (s *Server) RemoveLastItem(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	if err := s.items.RemoveLast(r.Context(), sess); err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveItem handles POST /items/{id}/move. A move past either end of the
// sequence is a no-op and still returns 204.
func (s *Server) MoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid item id")
		return
	}

	var body moveItemRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	sess := middleware.SessionFrom(r.Context())
	if err := s.items.Move(r.Context(), sess, id, body.Direction); err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SortItems handles POST /items/sort: the store itself is reordered and the
// committed sequence returned.
func (s *Server) SortItems(w http.ResponseWriter, r *http.Request) {
	var body sortItemsRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}
	mode, err := derive.ParseSortMode(body.Mode)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}

	sess := middleware.SessionFrom(r.Context())
	items, err := s.items.SortAndCommit(r.Context(), sess, mode)
	if err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, itemListResponse{Items: items, Count: len(items)})
}

// ReplaceItems handles PUT /items: the whole sequence is substituted.
func (s *Server) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	var body replaceItemsRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}

	sess := middleware.SessionFrom(r.Context())
	items, err := s.items.ReplaceAll(r.Context(), sess, body.Items)
	if err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, itemListResponse{Items: items, Count: len(items)})
}

// ClearItems handles DELETE /items. Idempotent.
func (s *Server) ClearItems(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	if err := s.items.Clear(r.Context(), sess); err != nil {
		writeServiceError(w, err, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTemplates handles GET /templates: the fixed starter-activity catalog.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.items.Templates(r.Context())
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Template{"templates": templates})
}
