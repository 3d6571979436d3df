// cmd/fyyur-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/deividmarreiro/fyyur/internal/api/rest/v1"
	"github.com/deividmarreiro/fyyur/internal/app"
	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence"
	"github.com/deividmarreiro/fyyur/internal/pkg/config"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	venues  venues.VenueService
	artists artists.ArtistService
	shows   shows.ShowService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.MigrateSchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	venueRepo, err := persistence.NewGormVenueRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create venue repository: %w", err)
	}

	artistRepo, err := persistence.NewGormArtistRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create artist repository: %w", err)
	}

	showRepo, err := persistence.NewGormShowRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create show repository: %w", err)
	}

	// Initialize services
	venueService, err := app.NewVenueService(venueRepo, artistRepo, showRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create venue service: %w", err)
	}

	artistService, err := app.NewArtistService(artistRepo, venueRepo, showRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create artist service: %w", err)
	}

	showService, err := app.NewShowService(showRepo, artistRepo, venueRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create show service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		venues:  venueService,
		artists: artistService,
		shows:   showService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.venues, services.artists, services.shows)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
