// Package handler implements the HTTP handlers for the Family Trip API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, admin.go, export.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/middleware"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the spreadsheet.
type TripServicer interface {
	Snapshot() domain.TripState
	Load(ctx context.Context) domain.TripState
}

// AdminServicer defines the admin workflow operations the handlers depend on.
type AdminServicer interface {
	Unlock(password string) (string, domain.AdminSession, error)
	Session(id string) (domain.AdminSession, error)
	Parse(ctx context.Context, id, text string) (domain.AdminSession, error)
	Apply(ctx context.Context, id string) (domain.AdminSession, error)
	Export(id string) ([]domain.ExportFile, error)
	ExportFile(id, kind string) (domain.ExportFile, error)
	Close(id string) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	trips  TripServicer
	admin  AdminServicer
	tokens middleware.TokenVerifier
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, admin AdminServicer, tokens middleware.TokenVerifier, log *slog.Logger) *Server {
	return &Server{trips: trips, admin: admin, tokens: tokens, log: log}
}

// Routes returns the API router. Admin routes other than unlock require a
// bearer token issued by POST /admin/unlock.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/trip", s.GetTrip)
	r.Post("/trip/refresh", s.RefreshTrip)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/unlock", s.UnlockAdmin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewBearerAuth(s.tokens))
			r.Get("/session", s.GetAdminSession)
			r.Delete("/session", s.CloseAdminSession)
			r.Post("/parse", s.ParseConfirmation)
			r.Post("/apply", s.ApplyChanges)
			r.Get("/export", s.GetExport)
		})
	})
	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client has gone away if this fails
	json.NewEncoder(w).Encode(v)
}
