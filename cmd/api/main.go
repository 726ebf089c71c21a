package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/catalog"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/config"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/database"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/geo"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/handler"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/kvstore"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/payment"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/repository"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/router"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting eco-cycle-hub API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the key-value store backend
	store, err := newStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer store.Close()

	// Load the immutable product catalogue
	products, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	productCatalog := catalog.New(products)
	logger.Info().Int("products", productCatalog.Size()).Msg("catalogue loaded")

	// Initialize repositories
	cartRepo := repository.NewCartRepository(store, logger)
	orderRepo := repository.NewOrderRepository(store, logger)
	pickupRepo := repository.NewPickupRepository(store, logger)
	userRepo := repository.NewUserRepository(store, logger)

	// Initialize capabilities
	resolver := geo.NewHTTPResolver(geo.Config{
		BaseURL: cfg.Geocoder.BaseURL,
		APIKey:  cfg.Geocoder.APIKey,
		Timeout: cfg.Geocoder.Timeout,
	}, logger)
	processor := payment.NewSimulatedProcessor(cfg.Payment.Delay, logger)

	// Initialize services
	productService := service.NewProductService(productCatalog, logger)
	cartService := service.NewCartService(cartRepo, productCatalog, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, processor, logger)
	pickupService := service.NewPickupService(pickupRepo, userRepo, logger)
	userService := service.NewUserService(userRepo, resolver, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	pickupHandler := handler.NewPickupHandler(pickupService, logger)
	userHandler := handler.NewUserHandler(userService, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, orderHandler, pickupHandler, userHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newStore builds the configured key-value store backend.
func newStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (kvstore.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		logger.Info().Msg("using in-memory store")
		return kvstore.NewMemoryStore(), nil

	case config.StoreBackendRedis:
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis store")
		return kvstore.NewRedisStore(ctx, kvstore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return kvstore.NewPostgresStore(pool, logger), nil

	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// loadCatalog loads the product catalogue from S3 (with a local
// fallback) or from the local file system only.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) ([]model.Product, error) {
	fileLoader := catalog.NewFileLoader(logger)

	var loader catalog.Loader = fileLoader
	if cfg.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 loader, using local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Key, logger)
		}
	} else {
		logger.Info().Msg("using local file system for the catalogue (S3 disabled)")
	}

	return loader.Load(ctx, cfg.FilePath)
}
