package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/internal/notification"
	"github.com/sportshop/storefront/internal/wishlist"
	"github.com/sportshop/storefront/internal/wishlist/usecase/command"
	"github.com/sportshop/storefront/internal/wishlist/usecase/query"
	"github.com/sportshop/storefront/pkg/logger"
)

// WishlistHandler handles HTTP requests for the wishlist
type WishlistHandler struct {
	toggleHandler *command.ToggleItemHandler
	addHandler    *command.AddItemHandler
	removeHandler *command.RemoveItemHandler
	clearHandler  *command.ClearWishlistHandler

	getHandler *query.GetWishlistHandler

	set      *wishlist.Set
	notifier *notification.Queue
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(set *wishlist.Set, catalog catalogdomain.Repository, notifier *notification.Queue) *WishlistHandler {
	return &WishlistHandler{
		toggleHandler: command.NewToggleItemHandler(set, catalog),
		addHandler:    command.NewAddItemHandler(set, catalog),
		removeHandler: command.NewRemoveItemHandler(set),
		clearHandler:  command.NewClearWishlistHandler(set),
		getHandler:    query.NewGetWishlistHandler(set, catalog),
		set:           set,
		notifier:      notifier,
	}
}

// RegisterRoutes registers the wishlist routes
func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wishlist", h.GetWishlist).Methods("GET")
	router.HandleFunc("/api/wishlist", h.ClearWishlist).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{id}", h.AddItem).Methods("PUT")
	router.HandleFunc("/api/wishlist/{id}", h.RemoveItem).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{id}/toggle", h.ToggleItem).Methods("POST")
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	products, err := h.getHandler.Handle(query.GetWishlistQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to read wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to read wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// ToggleItem handles POST /api/wishlist/{id}/toggle
func (h *WishlistHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	added, err := h.toggleHandler.Handle(r.Context(), command.ToggleItemCommand{ProductID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}
	if h.notifier != nil {
		h.notifier.Push(message, notification.KindSuccess)
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    map[string]interface{}{"inWishlist": added, "count": h.set.Count()},
	})
}

// AddItem handles PUT /api/wishlist/{id}
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.addHandler.Handle(r.Context(), command.AddItemCommand{ProductID: id}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Added to wishlist",
	})
}

// RemoveItem handles DELETE /api/wishlist/{id}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{ProductID: id}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove from wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Removed from wishlist",
	})
}

// ClearWishlist handles DELETE /api/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearWishlistCommand{}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Wishlist cleared",
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
