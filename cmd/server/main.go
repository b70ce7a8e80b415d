package main

import (
	"context"
	"errors"
	"event-staffing-service/internal/adapters/credentials"
	"event-staffing-service/internal/adapters/distance"
	"event-staffing-service/internal/adapters/events"
	"event-staffing-service/internal/adapters/repositories"
	"event-staffing-service/internal/api"
	"event-staffing-service/internal/config"
	"event-staffing-service/internal/platform/auth"
	"event-staffing-service/internal/platform/db"
	"event-staffing-service/internal/platform/obs"
	"event-staffing-service/internal/ports"
	"event-staffing-service/internal/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Google, Kafka) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	logger, err := obs.NewLogger(cfg.AppEnv, "event-staffing")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	conn, driver, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(conn, driver); err != nil {
		logger.Fatal("init schema", zap.Error(err))
	}
	if cfg.SeedPath != "" {
		if err := repositories.SeedFromJSON(conn, driver, cfg.SeedPath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Fatal("seed database", zap.Error(err))
			}
			logger.Warn("seed file not found, starting empty", zap.String("path", cfg.SeedPath))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := credentials.Open(ctx, credentials.Options{
		Backend:   cfg.CredentialBackend,
		DB:        conn,
		Driver:    driver,
		FilePath:  cfg.CredentialFile,
		RedisAddr: cfg.RedisAddr,
	})
	if err != nil {
		logger.Fatal("open credential store", zap.Error(err))
	}
	defer closeStore()
	apiKey := credentials.NewAPIKey(store)

	var publisher interface {
		ports.EventPublisher
		Close() error
	} = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info("publishing client events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}
	defer publisher.Close()

	admin, err := auth.LoadFile(cfg.AuthFile)
	if err != nil {
		logger.Fatal("load auth file", zap.Error(err))
	}
	openSettings := admin == nil && cfg.AppEnv == "development"
	switch {
	case openSettings:
		logger.Warn("no auth file, settings endpoints are unauthenticated (development)", zap.String("path", cfg.AuthFile))
	case admin == nil:
		logger.Warn("no auth file, settings endpoints are disabled", zap.String("path", cfg.AuthFile))
	}

	clients := repositories.NewSQLClientRepository(conn, driver)
	staff := repositories.NewSQLStaffRepository(conn, driver)
	eventRepo := repositories.NewSQLEventRepository(conn, driver)
	routing := distance.NewGoogleDistanceMatrix(cfg.RoutingBaseURL, cfg.RoutingTimeout)

	router := api.NewRouter(api.Deps{
		Dashboard:      services.NewDashboardService(clients, staff, eventRepo, publisher, logger),
		Estimator:      services.NewTravelCostEstimator(apiKey, routing, staff, eventRepo, logger),
		Credentials:    apiKey,
		Admin:          admin,
		OpenSettings:   openSettings,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})

	// Write timeout leaves room for one routing call at its full timeout.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RoutingTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("db_driver", driver),
			zap.String("credential_backend", cfg.CredentialBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
