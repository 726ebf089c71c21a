package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Resolver turns coordinates into a human-readable address.
type Resolver interface {
	// Resolve returns a formatted address for the coordinates. If the
	// lookup fails for any reason the formatted coordinate pair is
	// returned instead; manual entry is always a valid fallback, so
	// Resolve never fails the caller.
	Resolve(ctx context.Context, latitude, longitude float64) string
}

// Config holds reverse-geocoding settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// httpResolver implements Resolver against an OpenCage-style reverse
// geocoding endpoint.
type httpResolver struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  zerolog.Logger
}

// NewHTTPResolver creates a resolver backed by an HTTP geocoding service.
func NewHTTPResolver(cfg Config, logger zerolog.Logger) Resolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &httpResolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With().Str("component", "geo-resolver").Logger(),
	}
}

// geocodeResponse is the subset of the OpenCage response we read.
type geocodeResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
	} `json:"results"`
}

// Resolve returns a formatted address for the coordinates, or the
// coordinates themselves when the lookup fails.
func (r *httpResolver) Resolve(ctx context.Context, latitude, longitude float64) string {
	fallback := FormatCoordinates(latitude, longitude)

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%f+%f", latitude, longitude))
	query.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to build geocode request")
		return fallback
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn().Err(err).Msg("geocode request failed, falling back to coordinates")
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn().Int("status", resp.StatusCode).Msg("geocode request rejected, falling back to coordinates")
		return fallback
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		r.logger.Warn().Err(err).Msg("failed to decode geocode response")
		return fallback
	}

	if len(body.Results) == 0 || body.Results[0].Formatted == "" {
		r.logger.Debug().Msg("geocode response contained no results")
		return fallback
	}

	return body.Results[0].Formatted
}

// FormatCoordinates renders a lat/lng pair the way the UI displays
// unresolved locations.
func FormatCoordinates(latitude, longitude float64) string {
	return fmt.Sprintf("Lat: %.6f, Lng: %.6f", latitude, longitude)
}
