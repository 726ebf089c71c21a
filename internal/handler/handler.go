package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a service error onto an HTTP status. Domain
// errors carry their code in the response body; anything else is
// reported as an opaque internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  model.ErrCodeInternalError,
		})
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeProductNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeUserNotFound,
		model.ErrCodeRequestNotFound:
		status = http.StatusNotFound
	case model.ErrCodePaymentDeclined:
		status = http.StatusPaymentRequired
	case model.ErrCodeInvalidCredentials:
		status = http.StatusUnauthorized
	case model.ErrCodeEmailTaken:
		status = http.StatusConflict
	}

	logger.Debug().
		Str("code", domainErr.Code).
		Int("status", status).
		Str("error", domainErr.Message).
		Msg("domain error")

	writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

// pathSegments splits the request path after the given prefix into its
// remaining segments. Returns nil if the path does not carry the prefix.
func pathSegments(path, prefix string) []string {
	if !strings.HasPrefix(path, prefix) {
		return nil
	}
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return []string{}
	}
	return strings.Split(rest, "/")
}
