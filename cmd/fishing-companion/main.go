package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/mullinsd/fishing-companion/internal/api/http"
	"github.com/mullinsd/fishing-companion/internal/config"
	"github.com/mullinsd/fishing-companion/internal/gear"
	"github.com/mullinsd/fishing-companion/internal/geo"
	"github.com/mullinsd/fishing-companion/internal/journal"
	"github.com/mullinsd/fishing-companion/internal/scheduler"
	"github.com/mullinsd/fishing-companion/internal/species"
	"github.com/mullinsd/fishing-companion/internal/storage"
	"github.com/mullinsd/fishing-companion/internal/trips"
	"github.com/mullinsd/fishing-companion/internal/weather"
	"github.com/mullinsd/fishing-companion/internal/weather/providers"
)

func main() {
	// Load configuration (.env plus process environment).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Collection documents live on disk when DATA_DIR is set, otherwise in
	// memory only.
	var store storage.Store
	if cfg.DataDir != "" {
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open data dir %q: %v", cfg.DataDir, err)
		}
		store = fs
	} else {
		log.Println("INFO: DATA_DIR not set, data will not survive restarts")
		store = storage.NewMemoryStore()
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Providers with resilience (backoff + circuit breaker).
	weatherProvider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
	sunProvider := providers.NewSunriseSunsetProvider(httpClient)

	tripSvc := trips.NewService(store)
	gearSvc := gear.NewService(store)
	journalSvc := journal.NewService(store)
	speciesSvc := species.NewService(store)
	weatherSvc := weather.NewService(weatherProvider, sunProvider,
		weather.NewSnapshotCache(cfg.SnapshotMaxAge))

	// Scheduler that keeps conditions warm for every saved location.
	sched := scheduler.New(tripSvc, cfg.FetchInterval, weatherSvc)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "fishing-companion",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(helmet.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "fishing-companion",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Services{
		Trips:   tripSvc,
		Gear:    gearSvc,
		Journal: journalSvc,
		Species: speciesSvc,
		Weather: weatherSvc,
		Namer:   geo.NewNamer(cfg.GeocoderAPIKey),
	})

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
