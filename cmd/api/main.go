package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/internal/config"
	"github.com/fkhayef/tripsplit/internal/database"
	"github.com/fkhayef/tripsplit/internal/logging"
	"github.com/fkhayef/tripsplit/internal/participant"
	"github.com/fkhayef/tripsplit/internal/payment"
	"github.com/fkhayef/tripsplit/internal/server"
	"github.com/fkhayef/tripsplit/internal/settlement"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// @title        Tripsplit API
// @version      1.0
// @description  Shared trip expenses: participants, payments, balances and settlements.
// @host         localhost:8080
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}
	logger.Info("connected to database")

	// Repositories
	tripRepo := trip.NewRepository(db)
	participantRepo := participant.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	// Trip feature
	tripService := trip.NewService(tripRepo)
	tripHandler := trip.NewHandler(tripService, logging.WithComponent(logger, "trip"))

	// Participant feature (payments block deletion)
	participantService := participant.NewService(participantRepo, paymentRepo)
	participantHandler := participant.NewHandler(participantService, logging.WithComponent(logger, "participant"))

	// Payment feature (payer must belong to the trip)
	paymentService := payment.NewService(paymentRepo, participantRepo)
	paymentHandler := payment.NewHandler(paymentService, logging.WithComponent(logger, "payment"))

	// Settlement feature (weighting factory injected)
	weightFactory := settlement.NewFactory(cfg.DefaultWeightMode)
	settlementLogger := logging.WithComponent(logger, "settlement")
	settlementService := settlement.NewService(tripService, participantService, paymentService, weightFactory, settlementLogger)
	settlementHandler := settlement.NewHandler(settlementService, settlementLogger)

	router := server.NewRouter(server.Handlers{
		Trips:        tripHandler,
		Participants: participantHandler,
		Payments:     paymentHandler,
		Summaries:    settlementHandler,
	}, logging.WithComponent(logger, "http"), cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
