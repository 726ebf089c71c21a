package handler

import (
	"net/http"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// statusRequest is the body for status update requests.
type statusRequest struct {
	Status string `json:"status"`
}

// Checkout handles POST /api/orders/{customerID}/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/orders")
	if len(segments) != 2 || segments[1] != "checkout" {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}

	var req service.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	req.CustomerID = segments[0]

	order, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders/{customerID} requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/orders")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}

	orders, err := h.service.List(r.Context(), segments[0])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{customerID}/{orderID} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/orders")
	if len(segments) != 2 {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), segments[0], segments[1])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{customerID}/{orderID}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/orders")
	if len(segments) != 3 || segments[2] != "status" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), segments[0], segments[1], req.Status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
