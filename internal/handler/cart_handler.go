package handler

import (
	"net/http"
	"strconv"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the body for POST /api/cart/{customerID}/items.
// Quantity defaults to 1 when omitted.
type addItemRequest struct {
	ProductID int  `json:"productId"`
	Quantity  *int `json:"quantity"`
}

// updateItemRequest is the body for PUT /api/cart/{customerID}/items/{productID}.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart/{customerID} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/cart")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}

	cart, err := h.service.Get(r.Context(), segments[0])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// AddItem handles POST /api/cart/{customerID}/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/cart")
	if len(segments) != 2 || segments[1] != "items" {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.service.AddItem(r.Context(), segments[0], req.ProductID, quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// UpdateItem handles PUT /api/cart/{customerID}/items/{productID} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	customerID, productID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), customerID, productID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart/{customerID}/items/{productID} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	customerID, productID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), customerID, productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Clear handles DELETE /api/cart/{customerID} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/cart")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}

	if err := h.service.Clear(r.Context(), segments[0]); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemPath extracts /api/cart/{customerID}/items/{productID}.
func (h *CartHandler) itemPath(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	segments := pathSegments(r.URL.Path, "/api/cart")
	if len(segments) != 3 || segments[1] != "items" {
		writeError(w, http.StatusBadRequest, "customer ID and product ID are required", h.logger)
		return "", 0, false
	}

	productID, err := strconv.Atoi(segments[2])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return "", 0, false
	}

	return segments[0], productID, true
}
