package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/sportshop/storefront/internal/cart"
	cartDelivery "github.com/sportshop/storefront/internal/cart/delivery/http"
	cartcommand "github.com/sportshop/storefront/internal/cart/usecase/command"
	catalogDelivery "github.com/sportshop/storefront/internal/catalog/delivery/http"
	catalogrepo "github.com/sportshop/storefront/internal/catalog/repository"
	"github.com/sportshop/storefront/internal/config"
	"github.com/sportshop/storefront/internal/identity"
	identityDelivery "github.com/sportshop/storefront/internal/identity/delivery/http"
	"github.com/sportshop/storefront/internal/notification"
	notificationDelivery "github.com/sportshop/storefront/internal/notification/delivery/http"
	"github.com/sportshop/storefront/internal/preferences"
	preferencesDelivery "github.com/sportshop/storefront/internal/preferences/delivery/http"
	"github.com/sportshop/storefront/internal/wishlist"
	wishlistDelivery "github.com/sportshop/storefront/internal/wishlist/delivery/http"
	"github.com/sportshop/storefront/pkg/auth"
	"github.com/sportshop/storefront/pkg/kvstore"
	"github.com/sportshop/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init("storefront", cfg.Development)
	logger.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("Failed to open storage backend")
	}
	defer closeStore()

	catalog, err := catalogrepo.NewStaticRepository()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load catalog")
	}
	logger.Logger.Info().Int("products", catalog.Count()).Msg("Catalog loaded")

	// State containers restore their persisted blobs on construction.
	ledger := cart.NewLedger(ctx, store)
	wants := wishlist.NewSet(ctx, store)
	identities := identity.NewStore(ctx, store, auth.PlainVerifier{})
	prefs := preferences.NewStore(ctx, store)

	notifier := notification.NewQueue(cfg.NotificationTTL)
	defer notifier.Close()

	checkout := cartcommand.NewCheckoutHandler(ledger, cfg.CheckoutDelay)

	// Setup router
	router := mux.NewRouter()
	catalogDelivery.NewProductHandler(catalog).RegisterRoutes(router)
	cartDelivery.NewCartHandler(ledger, catalog, checkout, notifier).RegisterRoutes(router)
	wishlistDelivery.NewWishlistHandler(wants, catalog, notifier).RegisterRoutes(router)
	identityDelivery.NewUserHandler(identities, notifier).RegisterRoutes(router)
	notificationDelivery.NewNotificationHandler(notifier).RegisterRoutes(router)
	preferencesDelivery.NewPreferencesHandler(prefs).RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Storefront service is healthy"}`))
	}).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// openStore builds the configured key-value backend. The returned closer is
// a no-op for backends without a connection to release.
func openStore(cfg config.Config) (kvstore.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kvstore.NewMemoryStore(), func() {}, nil

	case config.BackendFile:
		fs, err := kvstore.NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil

	case config.BackendRedis:
		rs, err := kvstore.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { rs.Close() }, nil

	case config.BackendPostgres:
		ps, err := kvstore.NewPostgresStore(kvstore.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			return nil, nil, err
		}
		return ps, func() { ps.Close() }, nil

	default:
		logger.Logger.Warn().Str("backend", cfg.StorageBackend).Msg("Unknown storage backend, using memory")
		return kvstore.NewMemoryStore(), func() {}, nil
	}
}
