package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/rcapers/bj-term/internal/session"
	"github.com/rcapers/bj-term/internal/store"
)

// Handlers serves read-only views of the running session: current ledger,
// statistics, and round history. The game itself is played at the terminal;
// this surface only lets a browser watch.
type Handlers struct {
	store store.Store
	hub   *Hub

	mu   sync.RWMutex
	sess session.Session
}

// NewHandlers creates a new instance of Handlers
func NewHandlers(st store.Store, hub *Hub) *Handlers {
	return &Handlers{
		store: st,
		hub:   hub,
	}
}

// UpdateSession publishes the latest ledger state for HTTP readers. The game
// loop calls it after every settlement.
func (h *Handlers) UpdateSession(s *session.Session) {
	h.mu.Lock()
	h.sess = *s
	h.mu.Unlock()
}

// RegisterRoutes registers all API routes
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/session", h.GetSession).Methods("GET")
	r.HandleFunc("/api/session/stats", h.GetStats).Methods("GET")
	r.HandleFunc("/api/rounds", h.GetRounds).Methods("GET")

	// WebSocket endpoint for live snapshots
	r.HandleFunc("/ws", h.hub.WebSocketHandler)
}

// response helper function to send JSON responses
func response(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// error response helper function
func errorResponse(w http.ResponseWriter, status int, message string) {
	response(w, status, map[string]string{"error": message})
}

// GetSession returns the current session ledger
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	sess := h.sess
	h.mu.RUnlock()

	response(w, http.StatusOK, sess)
}

// GetStats returns the cumulative statistics
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	stats := h.sess.Stats
	h.mu.RUnlock()

	response(w, http.StatusOK, stats)
}

// GetRounds returns the round history for the current session
func (h *Handlers) GetRounds(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	id := h.sess.ID
	h.mu.RUnlock()

	rounds, err := h.store.Rounds(id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to load round history")
		return
	}

	response(w, http.StatusOK, rounds)
}
