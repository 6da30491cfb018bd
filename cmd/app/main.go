package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hemantgupta27/Court-booking-application/internal/config"
	"github.com/Hemantgupta27/Court-booking-application/internal/db"
	"github.com/Hemantgupta27/Court-booking-application/internal/email"
	"github.com/Hemantgupta27/Court-booking-application/internal/logger"
	"github.com/Hemantgupta27/Court-booking-application/internal/server"
	"github.com/Hemantgupta27/Court-booking-application/internal/venue"
)

// @title Court Booking API
// @version 1.0
// @description API for browsing venues and booking hourly court slots.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting court booking application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := venue.LoadCatalog(cfg.VenuesFile)
	if err != nil {
		logger.Fatalf("Failed to load venue catalog: %v", err)
	}
	logger.Infof("Venue catalog loaded: %d venues", len(catalog.All()))

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emailService.Start(ctx)

	srv := server.New(database, cfg, emailService, catalog)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
