package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sportshop/storefront/internal/notification"
)

// NotificationHandler handles HTTP requests for the notification queue
type NotificationHandler struct {
	queue *notification.Queue
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(queue *notification.Queue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// RegisterRoutes registers the notification routes
func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/notifications", h.ListNotifications).Methods("GET")
	router.HandleFunc("/api/notifications/{id}", h.DismissNotification).Methods("DELETE")
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.queue.List(),
	})
}

// DismissNotification handles DELETE /api/notifications/{id}
func (h *NotificationHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if !h.queue.Dismiss(id) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Notification not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Notification dismissed",
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
