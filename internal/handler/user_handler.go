package handler

import (
	"net/http"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles registration, login and profile HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// registerCustomerRequest adds the confirmation field checked at the
// HTTP edge; the service never sees it.
type registerCustomerRequest struct {
	service.RegisterCustomerRequest
	ConfirmPassword string `json:"confirmPassword"`
}

type registerIndustryRequest struct {
	service.RegisterIndustryRequest
	ConfirmPassword string `json:"confirmPassword"`
}

// loginRequest is the body for login requests.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCustomer handles POST /api/register/customer requests.
func (h *UserHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if req.ConfirmPassword != req.Password {
		writeError(w, http.StatusBadRequest, "passwords do not match", h.logger)
		return
	}

	customer, err := h.service.RegisterCustomer(r.Context(), &req.RegisterCustomerRequest)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// RegisterIndustry handles POST /api/register/industry requests.
func (h *UserHandler) RegisterIndustry(w http.ResponseWriter, r *http.Request) {
	var req registerIndustryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if req.ConfirmPassword != req.Password {
		writeError(w, http.StatusBadRequest, "passwords do not match", h.logger)
		return
	}

	industry, err := h.service.RegisterIndustry(r.Context(), &req.RegisterIndustryRequest)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, industry)
}

// LoginCustomer handles POST /api/login/customer requests.
func (h *UserHandler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	customer, err := h.service.LoginCustomer(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// LoginIndustry handles POST /api/login/industry requests.
func (h *UserHandler) LoginIndustry(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	industry, err := h.service.LoginIndustry(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, industry)
}

// CustomerProfile handles GET and PUT /api/profile/customer/{id} requests.
func (h *UserHandler) CustomerProfile(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/profile/customer")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}
	id := segments[0]

	switch r.Method {
	case http.MethodGet:
		customer, err := h.service.GetCustomer(r.Context(), id)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, customer)

	case http.MethodPut:
		var customer model.Customer
		if err := decodeJSON(r, &customer); err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		customer.ID = id

		updated, err := h.service.UpdateCustomer(r.Context(), &customer)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// IndustryProfile handles GET and PUT /api/profile/industry/{id} requests.
func (h *UserHandler) IndustryProfile(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/profile/industry")
	if len(segments) != 1 {
		writeError(w, http.StatusBadRequest, "industry ID is required", h.logger)
		return
	}
	id := segments[0]

	switch r.Method {
	case http.MethodGet:
		industry, err := h.service.GetIndustry(r.Context(), id)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, industry)

	case http.MethodPut:
		var industry model.IndustryUser
		if err := decodeJSON(r, &industry); err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		industry.ID = id

		updated, err := h.service.UpdateIndustry(r.Context(), &industry)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
