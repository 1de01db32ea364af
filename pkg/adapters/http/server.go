// Package http exposes a lattice store as a JSON API.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
	"github.com/latticekit/lattice/pkg/scope"
)

// Store is the surface the server needs from the state container.
type Store interface {
	ports.Dispatcher
	ports.StateSource
	Keys() []string
}

// Server routes JSON requests onto a store. Instance views are served
// through registered selector sets, so the HTTP layer reads state the
// same way any other consumer does.
type Server struct {
	store Store

	mu    sync.RWMutex
	views map[string]map[string]scope.GlobalSelector[any]
}

// NewServer wraps a store.
func NewServer(store Store) *Server {
	return &Server{
		store: store,
		views: make(map[string]map[string]scope.GlobalSelector[any]),
	}
}

// RegisterInstance exposes an instance's globalized selectors under its id.
func (s *Server) RegisterInstance(instanceID string, selectors map[string]scope.GlobalSelector[any]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[instanceID] = selectors
}

// NewHandler builds the HTTP handler for the server.
func NewHandler(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/state", s.handleState)
	r.Get("/instances", s.handleInstances)
	r.Get("/instances/{instanceID}", s.handleInstance)
	r.Post("/dispatch", s.handleDispatch)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"state": s.store.State(),
	})
}

func (s *Server) handleInstances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"instances": s.store.Keys(),
	})
}

// handleInstance serves the selector-derived view of one instance.
func (s *Server) handleInstance(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, "instanceID")

	s.mu.RLock()
	selectors, ok := s.views[instanceID]
	s.mu.RUnlock()
	if !ok {
		http.Error(w, fmt.Sprintf("unknown instance %q", instanceID), http.StatusNotFound)
		return
	}

	state := s.store.State()
	view := make(map[string]any, len(selectors))
	for name, sel := range selectors {
		view[name] = sel(state)
	}
	writeJSON(w, http.StatusOK, view)
}

// handleDispatch decodes a plain action and applies it. Actions with a
// missing instance tag are accepted and simply match no slice; that is
// the fail-closed contract, not an HTTP error.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var action domain.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Dispatch: invalid request body", "error", err)
		return
	}
	if action.Type == "" {
		http.Error(w, "Missing action type", http.StatusBadRequest)
		return
	}

	s.store.Dispatch(action)
	writeJSON(w, http.StatusOK, map[string]any{
		"state": s.store.State(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
