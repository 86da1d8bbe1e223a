package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sportshop/storefront/internal/cart"
	"github.com/sportshop/storefront/internal/cart/domain"
	"github.com/sportshop/storefront/internal/cart/usecase/command"
	"github.com/sportshop/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/internal/notification"
	"github.com/sportshop/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the cart ledger
type CartHandler struct {
	addHandler       *command.AddItemHandler
	removeHandler    *command.RemoveItemHandler
	setQtyHandler    *command.SetQuantityHandler
	incrementHandler *command.IncrementItemHandler
	decrementHandler *command.DecrementItemHandler
	clearHandler     *command.ClearCartHandler
	checkoutHandler  *command.CheckoutHandler

	getHandler *query.GetCartHandler

	ledger    *cart.Ledger
	notifier  *notification.Queue
	cartItems prometheus.Gauge
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	ledger *cart.Ledger,
	catalog catalogdomain.Repository,
	checkoutHandler *command.CheckoutHandler,
	notifier *notification.Queue,
) *CartHandler {
	cartItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_items_total",
		Help: "Number of units currently in the cart",
	})
	prometheus.MustRegister(cartItems)

	return &CartHandler{
		addHandler:       command.NewAddItemHandler(ledger, catalog),
		removeHandler:    command.NewRemoveItemHandler(ledger),
		setQtyHandler:    command.NewSetQuantityHandler(ledger),
		incrementHandler: command.NewIncrementItemHandler(ledger),
		decrementHandler: command.NewDecrementItemHandler(ledger),
		clearHandler:     command.NewClearCartHandler(ledger),
		checkoutHandler:  checkoutHandler,
		getHandler:       query.NewGetCartHandler(ledger),
		ledger:           ledger,
		notifier:         notifier,
		cartItems:        cartItems,
	}
}

// RegisterRoutes registers the cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.GetCart).Methods("GET")
	router.HandleFunc("/api/cart", h.ClearCart).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.AddItem).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.SetQuantity).Methods("PUT")
	router.HandleFunc("/api/cart/items/{id}", h.RemoveItem).Methods("DELETE")
	router.HandleFunc("/api/cart/items/{id}/increment", h.IncrementItem).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}/decrement", h.DecrementItem).Methods("POST")
	router.HandleFunc("/api/cart/checkout", h.Checkout).Methods("POST")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getHandler.Handle(query.GetCartQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to read cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to read cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"productId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{ProductID: req.ProductID}
	if err := h.addHandler.Handle(r.Context(), cmd); err != nil {
		logger.Logger.Warn().Err(err).Int("product_id", req.ProductID).Msg("Failed to add item to cart")
		status := http.StatusNotFound
		if errors.Is(err, domain.ErrInvalidProduct) {
			status = http.StatusBadRequest
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Push("Added to cart", notification.KindSuccess)
	}
	h.updateItemsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    h.ledger.Items(),
	})
}

// SetQuantity handles PUT /api/cart/items/{id}
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.SetQuantityCommand{ProductID: id, Quantity: req.Quantity}
	if err := h.setQtyHandler.Handle(r.Context(), cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to set quantity")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to set quantity",
		})
		return
	}

	h.updateItemsMetric()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    h.ledger.Items(),
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{ProductID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to remove item")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove item",
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Push("Removed from cart", notification.KindInfo)
	}
	h.updateItemsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data:    h.ledger.Items(),
	})
}

// IncrementItem handles POST /api/cart/items/{id}/increment
func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.incrementHandler.Handle(r.Context(), command.IncrementItemCommand{ProductID: id}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to increment item",
		})
		return
	}

	h.updateItemsMetric()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.ledger.Items(),
	})
}

// DecrementItem handles POST /api/cart/items/{id}/decrement
func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.decrementHandler.Handle(r.Context(), command.DecrementItemCommand{ProductID: id}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to decrement item",
		})
		return
	}

	h.updateItemsMetric()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.ledger.Items(),
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	h.updateItemsMetric()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	confirmation, err := h.checkoutHandler.Handle(r.Context(), command.CheckoutCommand{})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Checkout failed")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Push("Order placed successfully!", notification.KindSuccess)
	}
	h.updateItemsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    confirmation,
	})
}

// updateItemsMetric updates the cart size gauge
func (h *CartHandler) updateItemsMetric() {
	h.cartItems.Set(float64(h.ledger.Totals().ItemCount))
}
