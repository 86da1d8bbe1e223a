package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sportshop/storefront/internal/preferences"
)

// PreferencesHandler handles HTTP requests for UI preferences
type PreferencesHandler struct {
	store *preferences.Store
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store *preferences.Store) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

// RegisterRoutes registers the preferences routes
func (h *PreferencesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/preferences/theme", h.GetTheme).Methods("GET")
	router.HandleFunc("/api/preferences/theme", h.SetTheme).Methods("PUT")
	router.HandleFunc("/api/preferences/theme/toggle", h.ToggleTheme).Methods("POST")
}

// GetTheme handles GET /api/preferences/theme
func (h *PreferencesHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"theme": h.store.Theme()},
	})
}

// SetTheme handles PUT /api/preferences/theme
func (h *PreferencesHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	theme := h.store.SetTheme(r.Context(), req.Theme)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"theme": theme},
	})
}

// ToggleTheme handles POST /api/preferences/theme/toggle
func (h *PreferencesHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.store.ToggleTheme(r.Context())
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"theme": theme},
	})
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
