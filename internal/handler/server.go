// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, items.go, export.go, ...) but all share the same Server
// struct so they can access its dependencies.
//
// Every route except /healthz operates on the session resolved by
// middleware.NewSessionResolver, taken from the request context.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mverstraete/tripdash/internal/derive"
	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/state"
)

// TripServicer defines the profile operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type TripServicer interface {
	Get(ctx context.Context, sess *state.Session) (domain.TripProfile, error)
	Save(ctx context.Context, sess *state.Session, p domain.TripProfile) (domain.TripProfile, error)
	Reset(ctx context.Context, sess *state.Session) (domain.TripProfile, error)
	LoadDemoData(ctx context.Context, sess *state.Session) (domain.TripProfile, error)
}

// ItineraryServicer defines the item-store operations the handlers depend on.
type ItineraryServicer interface {
	List(ctx context.Context, sess *state.Session, day *int, mode derive.SortMode) ([]domain.ItineraryItem, error)
	Add(ctx context.Context, sess *state.Session, day int, timeStr, title, category string, cost int, tags []string) (domain.ItineraryItem, int, error)
	RemoveByID(ctx context.Context, sess *state.Session, id uuid.UUID) error
	RemoveLast(ctx context.Context, sess *state.Session) error
	Move(ctx context.Context, sess *state.Session, id uuid.UUID, direction int) error
	SortAndCommit(ctx context.Context, sess *state.Session, mode derive.SortMode) ([]domain.ItineraryItem, error)
	ReplaceAll(ctx context.Context, sess *state.Session, items []domain.ItineraryItem) ([]domain.ItineraryItem, error)
	Clear(ctx context.Context, sess *state.Session) error
	Templates(ctx context.Context) ([]domain.Template, error)
}

// ExportServicer defines the export operations the handlers depend on.
type ExportServicer interface {
	Rows(ctx context.Context, sess *state.Session) ([]domain.ExportRow, error)
	Document(ctx context.Context, sess *state.Session) (domain.ExportDocument, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips  TripServicer
	items  ItineraryServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, items ItineraryServicer, export ExportServicer) *Server {
	return &Server{trips: trips, items: items, export: export}
}

// NewRouter registers every API route on a fresh chi router.
// Session resolution and the other cross-cutting middleware are wired by the
// caller (main.go, or the test harness) around this router.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trip", func(r chi.Router) {
		r.Get("/", s.GetTrip)
		r.Put("/", s.SaveTrip)
		r.Post("/reset", s.ResetTrip)
		r.Post("/demo", s.LoadDemoData)
		r.Get("/snapshot", s.GetSnapshot)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.ListItems)
		r.Post("/", s.AddItem)
		r.Put("/", s.ReplaceItems)
		r.Delete("/", s.ClearItems)
		r.Post("/sort", s.SortItems)
		r.Delete("/last", s.RemoveLastItem)
		r.Delete("/{id}", s.RemoveItem)
		r.Post("/{id}/move", s.MoveItem)
	})

	r.Get("/templates", s.ListTemplates)
	r.Get("/activity", s.GetActivity)
	r.Get("/export", s.GetExport)

	return r
}
