// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/contacts/internal/domain/usecase"
	"github.com/okian/contacts/pkg/logger"
)

// Server wires HTTP routes for the business API.
type Server struct {
	contactsHandler *ContactsHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(getAll usecase.GetAllContactsUseCase, create usecase.CreateContactUseCase, statsProvider StatsProvider, opts ...Option) *Server {
	return &Server{
		contactsHandler: NewContactsHandler(getAll, create, opts...),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r := chi.NewRouter()
	r.Mount("/contact", s.contactsHandler.Routes())
	contact := MetricsMiddleware(r.ServeHTTP, "contact")
	mux.HandleFunc("/contact", contact)
	mux.HandleFunc("/contact/", contact)
}

// Option configures HTTP handlers.
type Option func(*handlerOptions)

type handlerOptions struct {
	logger logger.Logger
}

// WithLogger sets the logger handlers report failures to.
func WithLogger(l logger.Logger) Option {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) handlerOptions {
	o := handlerOptions{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// messageResponse is the body of every non-list reply.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}
