package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"musafir/internal/app/cart"
	appflight "musafir/internal/app/flight"
	appreservation "musafir/internal/app/reservation"
	"musafir/internal/app/search"
	appuser "musafir/internal/app/user"
	"musafir/internal/audit"
	"musafir/internal/cache"
	"musafir/internal/config"
	"musafir/internal/consumer"
	"musafir/internal/db"
	"musafir/internal/db/repository"
	carthandler "musafir/internal/http/handlers/cart"
	flighthandler "musafir/internal/http/handlers/flight"
	"musafir/internal/http/handlers/health"
	searchhandler "musafir/internal/http/handlers/search"
	userhandler "musafir/internal/http/handlers/user"
	"musafir/internal/http/router"
	"musafir/internal/ingress"
	"musafir/internal/logging"
	"musafir/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)

	logger.Info("starting service",
		"env", cfg.Environment,
	)

	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Initialize Postgres (Ent client)
	dbClient, err := db.NewClient(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	// Deferred before the consumer's Close, so the in-flight message
	// finishes its decode-dispatch-audit sequence before storage goes
	// away.
	defer func(dbClient *db.Client) {
		_ = dbClient.Close()
	}(dbClient)

	// 5) Initialize Redis
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("failed to init redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close redis", "error", err)
		}
	}()

	// 6) Event publisher (HTTP to the bus ingress)
	publisher, err := ingress.NewPublisher(cfg.Ingress, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}

	// 7) Repositories & services
	flightRepo := repository.NewFlightRepository(dbClient, logger)
	reservationRepo := repository.NewReservationRepository(dbClient, logger)
	auditRepo := repository.NewAuditRepository(dbClient, logger)

	flightCache := cache.NewFlightCache(redisClient)
	recorder := audit.NewRecorder(auditRepo, logger)

	flightService := appflight.NewService(flightRepo, flightCache, logger)
	reservationService := appreservation.NewService(reservationRepo, logger)
	searchService := search.NewService(publisher, logger)
	cartService := cart.NewService(publisher, logger)
	userService := appuser.NewService(publisher, logger)

	// 8) Event consumer (Kafka via Watermill)
	registry := consumer.NewRegistry()
	if err := consumer.RegisterDomainHandlers(registry, flightService, reservationService); err != nil {
		logger.Error("failed to register event handlers", "error", err)
		os.Exit(1)
	}

	eventConsumer, err := consumer.New(cfg.Kafka, registry, recorder, logger)
	if err != nil {
		logger.Error("failed to init event consumer", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = eventConsumer.Close()
	}()

	// 9) HTTP handlers
	healthHandler := health.NewHandler(dbClient, redisClient)
	flightHandler := flighthandler.NewHandler(flightService, logger)
	searchHandler := searchhandler.NewHandler(searchService, logger)
	cartHandler := carthandler.NewHandler(cartService, logger)
	userHandler := userhandler.NewHandler(userService, logger)

	// 10) HTTP router
	httpRouter := router.NewRouter(
		logger,
		cfg.Observability.ServiceName,
		healthHandler,
		flightHandler,
		searchHandler,
		cartHandler,
		userHandler,
	)

	// 11) HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName, // span name prefix
		),
	}

	// 12) Start concurrent processes (HTTP server, event consumer)
	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		logger.Info("event consumer starting",
			"topic", cfg.Kafka.Topic,
			"group", cfg.Kafka.GroupID,
			"enabled", cfg.Kafka.Enabled,
		)
		if err := eventConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// 13) Wait for shutdown signal or an error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("fatal error from subsystem", "error", err)
		stop()
	}

	// 14) Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	logger.Info("service stopped")
}
