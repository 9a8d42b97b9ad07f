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

	"github.com/ArowuTest/nft-raffle-backend/api/routes"
	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/ArowuTest/nft-raffle-backend/internal/handlers"
	"github.com/ArowuTest/nft-raffle-backend/internal/logging"
	"github.com/ArowuTest/nft-raffle-backend/internal/metrics"
	mongorepo "github.com/ArowuTest/nft-raffle-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	mongodb "github.com/ArowuTest/nft-raffle-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Log)
	gin.SetMode(gin.ReleaseMode)

	if cfg.JWT.Secret == "" {
		slog.Warn("JWT secret is not configured; admin routes will reject every request")
	}

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	registryRepo := mongorepo.NewRegistryRepository(db)
	raffleRepo := mongorepo.NewRaffleRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	adminRepo := mongorepo.NewAdminUserRepository(db)
	eventRepo := mongorepo.NewEventRepository(db)

	drawMetrics := metrics.New(prometheus.DefaultRegisterer)

	eventService := services.NewEventService(eventRepo)
	registryService := services.NewRegistryService(registryRepo, eventService)
	raffleService, err := services.NewRaffleService(raffleRepo, registryRepo, winnerRepo, cfg.Raffle, drawMetrics, eventService)
	if err != nil {
		log.Fatalf("Failed to create raffle service: %v", err)
	}
	authService := services.NewAuthService(adminRepo, cfg.JWT)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		RaffleHandler:   handlers.NewRaffleHandler(raffleService),
		RegistryHandler: handlers.NewRegistryHandler(registryService),
		EventHandler:    handlers.NewEventHandler(eventService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "database", cfg.MongoDB.Database, "randomSource", cfg.Raffle.RandomSource)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
