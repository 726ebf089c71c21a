package router

import (
	"net/http"
	"strings"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/handler"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	pickupHandler *handler.PickupHandler,
	userHandler *handler.UserHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: collection, categories and single product
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		segs := segments(r.URL.Path, "/api/products")
		switch {
		case len(segs) == 0:
			productHandler.List(w, r)
		case len(segs) == 1 && segs[0] == "categories":
			productHandler.Categories(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes: cart document and its line items
	mux.HandleFunc("/api/cart/", func(w http.ResponseWriter, r *http.Request) {
		segs := segments(r.URL.Path, "/api/cart")
		switch {
		case len(segs) == 1 && r.Method == http.MethodGet:
			cartHandler.Get(w, r)
		case len(segs) == 1 && r.Method == http.MethodDelete:
			cartHandler.Clear(w, r)
		case len(segs) == 2 && segs[1] == "items" && r.Method == http.MethodPost:
			cartHandler.AddItem(w, r)
		case len(segs) == 3 && segs[1] == "items" && r.Method == http.MethodPut:
			cartHandler.UpdateItem(w, r)
		case len(segs) == 3 && segs[1] == "items" && r.Method == http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	// Order routes: checkout, history and status updates
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		segs := segments(r.URL.Path, "/api/orders")
		switch {
		case len(segs) == 2 && segs[1] == "checkout" && r.Method == http.MethodPost:
			orderHandler.Checkout(w, r)
		case len(segs) == 1 && r.Method == http.MethodGet:
			orderHandler.List(w, r)
		case len(segs) == 2 && r.Method == http.MethodGet:
			orderHandler.GetByID(w, r)
		case len(segs) == 3 && segs[2] == "status" && r.Method == http.MethodPut:
			orderHandler.UpdateStatus(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	// Pickup routes: requests, cancellation, status and dashboard stats
	mux.HandleFunc("/api/pickups/", func(w http.ResponseWriter, r *http.Request) {
		segs := segments(r.URL.Path, "/api/pickups")
		switch {
		case len(segs) == 1 && r.Method == http.MethodPost:
			pickupHandler.Create(w, r)
		case len(segs) == 1 && r.Method == http.MethodGet:
			pickupHandler.List(w, r)
		case len(segs) == 2 && segs[1] == "stats" && r.Method == http.MethodGet:
			pickupHandler.Stats(w, r)
		case len(segs) == 2 && r.Method == http.MethodDelete:
			pickupHandler.Cancel(w, r)
		case len(segs) == 3 && segs[2] == "status" && r.Method == http.MethodPut:
			pickupHandler.UpdateStatus(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	// Account routes
	mux.HandleFunc("/api/register/customer", post(userHandler.RegisterCustomer))
	mux.HandleFunc("/api/register/industry", post(userHandler.RegisterIndustry))
	mux.HandleFunc("/api/login/customer", post(userHandler.LoginCustomer))
	mux.HandleFunc("/api/login/industry", post(userHandler.LoginIndustry))
	mux.HandleFunc("/api/profile/customer/", userHandler.CustomerProfile)
	mux.HandleFunc("/api/profile/industry/", userHandler.IndustryProfile)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// post restricts a handler to POST requests.
func post(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// segments splits the path after the prefix into its remaining parts.
func segments(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return []string{}
	}
	return strings.Split(rest, "/")
}
