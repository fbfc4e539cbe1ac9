package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AeroAndes-Airlines/service-reservation/internal/application"
	"github.com/AeroAndes-Airlines/service-reservation/internal/config"
	"github.com/AeroAndes-Airlines/service-reservation/internal/domain/reservation"
	"github.com/AeroAndes-Airlines/service-reservation/internal/events"
	"github.com/AeroAndes-Airlines/service-reservation/internal/handler"
	"github.com/AeroAndes-Airlines/service-reservation/internal/health"
	"github.com/AeroAndes-Airlines/service-reservation/internal/kafka"
	"github.com/AeroAndes-Airlines/service-reservation/internal/logger"
	"github.com/AeroAndes-Airlines/service-reservation/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-reservation")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-reservation",
		zap.String("port", cfg.Port),
	)

	// Build the in-memory registry
	registry := reservation.NewRegistry()
	if cfg.SeedDemoData {
		if err := reservation.SeedDemoData(registry); err != nil {
			log.Fatal("failed to seed demo data", zap.Error(err))
		}
		log.Info("demo data seeded",
			zap.Int("passengers", len(registry.Passengers())),
			zap.Int("flights", len(registry.Flights())),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Kafka producer when event publishing is enabled
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer func() { _ = producer.Close() }()
	}

	// Initialize application service
	reservationService := application.NewReservationService(registry, producer, log)

	// Initialize and start check-in event consumer in a goroutine
	if cfg.Kafka.Enabled {
		groupID := cfg.Kafka.GroupPrefix + "service-reservation"
		checkinConsumer := events.NewCheckinEventConsumer(
			cfg.Kafka.Brokers,
			groupID,
			reservationService,
			log,
		)
		defer func() { _ = checkinConsumer.Close() }()

		go func() {
			log.Info("starting check-in event consumer")
			if err := checkinConsumer.Start(ctx); err != nil && err != context.Canceled {
				log.Error("check-in event consumer error", zap.Error(err))
			}
		}()
	}

	// Initialize HTTP handlers
	passengerHandler := handler.NewPassengerHandler(reservationService)
	flightHandler := handler.NewFlightHandler(reservationService)
	bookingHandler := handler.NewBookingHandler(reservationService)
	statsHandler := handler.NewStatsHandler(reservationService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler("service-reservation")
	healthHandler.RegisterRoutes(router)

	// Register routes
	passengerHandler.RegisterRoutes(&router.RouterGroup)
	flightHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	statsHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-reservation...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-reservation stopped")
}
