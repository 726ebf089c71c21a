package handler

import (
	"net/http"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/service"

	"github.com/rs/zerolog"
)

// PickupHandler handles waste pickup HTTP requests.
type PickupHandler struct {
	service service.PickupService
	logger  zerolog.Logger
}

// NewPickupHandler creates a new pickup handler.
func NewPickupHandler(service service.PickupService, logger zerolog.Logger) *PickupHandler {
	return &PickupHandler{
		service: service,
		logger:  logger.With().Str("handler", "pickup").Logger(),
	}
}

// createPickupRequest is the body for POST /api/pickups/{industryID}.
type createPickupRequest struct {
	WasteType string `json:"wasteType"`
	Amount    int    `json:"amount"`
	Notes     string `json:"notes"`
}

// Create handles POST /api/pickups/{industryID} requests.
func (h *PickupHandler) Create(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/pickups")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "industry ID is required", h.logger)
		return
	}

	var req createPickupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	request, err := h.service.Create(r.Context(), segments[0], req.WasteType, req.Amount, req.Notes)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

// List handles GET /api/pickups/{industryID} requests.
func (h *PickupHandler) List(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/pickups")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "industry ID is required", h.logger)
		return
	}

	requests, err := h.service.List(r.Context(), segments[0])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if requests == nil {
		requests = []model.PickupRequest{}
	}

	writeJSON(w, http.StatusOK, requests)
}

// Cancel handles DELETE /api/pickups/{industryID}/{requestID} requests.
func (h *PickupHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/pickups")
	if len(segments) != 2 {
		writeError(w, http.StatusBadRequest, "request ID is required", h.logger)
		return
	}

	if err := h.service.Cancel(r.Context(), segments[0], segments[1]); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus handles PUT /api/pickups/{industryID}/{requestID}/status requests.
func (h *PickupHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/pickups")
	if len(segments) != 3 || segments[2] != "status" {
		writeError(w, http.StatusBadRequest, "request ID is required", h.logger)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	request, err := h.service.UpdateStatus(r.Context(), segments[0], segments[1], req.Status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, request)
}

// Stats handles GET /api/pickups/{industryID}/stats requests.
func (h *PickupHandler) Stats(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/pickups")
	if len(segments) != 2 || segments[1] != "stats" {
		writeError(w, http.StatusBadRequest, "industry ID is required", h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context(), segments[0])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
