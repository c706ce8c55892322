// Package api serves precomputed recommendation documents over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"

	"InvestAdvisor/internal/runstate"
	"InvestAdvisor/internal/store"
	"InvestAdvisor/internal/worker"
)

// Server is the read API over the document store.
type Server struct {
	Store           store.DocumentStore
	State           *runstate.Manager
	Publisher       message.Publisher
	Topic           string
	DefaultClientID string
}

// NewServer creates a Server.
func NewServer(st store.DocumentStore, state *runstate.Manager, pub message.Publisher, topic, defaultClientID string) *Server {
	return &Server{
		Store:           st,
		State:           state,
		Publisher:       pub,
		Topic:           topic,
		DefaultClientID: defaultClientID,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/recommendations/{clientID}", s.handleGet)
	r.Post("/recommendations/refresh", s.handleRefresh)
	return r
}

// handleGet returns the stored document for a client, falling back to
// the configured default client's document when the client has none.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	doc, err := s.Store.Get(r.Context(), clientID)
	if errors.Is(err, store.ErrNotFound) && s.DefaultClientID != "" && clientID != s.DefaultClientID {
		doc, err = s.Store.Get(r.Context(), s.DefaultClientID)
	}
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"message": "no recommendations found for this client",
		})
		return
	}
	if err != nil {
		log.Printf("[ERROR] read document for %s: %v", clientID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "internal error reading recommendations",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := worker.RequestRun(s.Publisher, s.Topic, "api"); err != nil {
		log.Printf("[ERROR] refresh request: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "could not request a batch run",
		})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "batch run requested",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	state := s.State.GetState()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "OK",
		"service": "invest-advisor",
		"runs":    state,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
