package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haven-booking-service/internal/infrastructure/config"
	"haven-booking-service/internal/infrastructure/oauth"
	"haven-booking-service/internal/infrastructure/persistence"
	"haven-booking-service/internal/interface/gmail"
	"haven-booking-service/internal/interface/httpapi"
	mongoRepo "haven-booking-service/internal/interface/repository"
	"haven-booking-service/internal/usecase"
	"haven-booking-service/pkg/logger"
	"haven-booking-service/pkg/metrics"
	"haven-booking-service/templates"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Haven Booking Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	bookingRepo := mongoRepo.NewMongoBookingRepository(db)
	messageRepo := mongoRepo.NewMongoMessageRepository(db)
	adminRepo, err := mongoRepo.NewGormAdminRepository(gormDB)
	if err != nil {
		log.Fatal("Failed to migrate admin table", "error", err)
	}

	// Set up Gmail OAuth and sender
	gmailOAuth := oauth.NewGmailOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		cfg.GmailRefreshToken,
		log,
	)
	tokenSource := gmailOAuth.GetTokenSource(ctx)

	mailRepo, err := gmail.NewGmailSender(ctx, tokenSource, log)
	if err != nil {
		log.Fatal("Failed to create Gmail sender", "error", err)
	}

	// Set up usecases
	m := metrics.NewMetrics("haven", prometheus.DefaultRegisterer)

	property := templates.Property{
		Name:    cfg.PropertyName,
		Email:   cfg.PropertyEmail,
		Phone:   cfg.PropertyPhone,
		Address: cfg.PropertyAddress,
	}

	lifecycle := usecase.NewBookingLifecycle(bookingRepo, mailRepo, property, cfg.PricePerNight, log, m)
	inbox := usecase.NewMessageInbox(messageRepo, log, m)
	adminAuth := usecase.NewAdminAuth(adminRepo, cfg.JWTSecret, cfg.JWTExpiry, log)

	if err := adminAuth.Bootstrap(ctx, cfg.BootstrapAdminUser, cfg.BootstrapAdminPass); err != nil {
		log.Fatal("Failed to bootstrap admin account", "error", err)
	}

	// Set up HTTP server
	router := httpapi.NewRouter(lifecycle, inbox, adminAuth)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Haven Booking Service stopped")
}
