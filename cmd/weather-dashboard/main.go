package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/render"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

func main() {
	location := flag.String("location", "", "print the dashboard for this location and exit")
	flag.Parse()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	service := newService(cfg)

	if *location != "" {
		os.Exit(runOnce(service, *location, cfg.HTTPTimeout))
	}

	// Optional watch job that periodically logs reports for configured locations.
	sched := scheduler.New(cfg.WatchLocations, cfg.WatchInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.HTTPTimeout*3 + 5*time.Second,
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

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather-dashboard",
			"provider": service.ProviderName(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
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

// newService wires the configured geocoder and weather provider behind one shared,
// throttled HTTP client.
func newService(cfg *config.AppConfig) *weather.Service {
	httpCfg := providers.HTTPClientConfig{
		Client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
	if cfg.UpstreamRPS > 0 {
		httpCfg.Limiter = rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), cfg.UpstreamBurst)
	}

	var geocoder weather.Geocoder
	switch cfg.GeocoderProvider {
	case config.GeocoderGoogle:
		geocoder = providers.NewGoogleGeocoder(httpCfg, cfg.GoogleAPIKey, cfg.GeocodeCountry)
	default:
		geocoder = providers.NewOpenCageGeocoder(httpCfg, cfg.OpenCageAPIKey, cfg.GeocodeCountry)
	}

	var provider weather.Provider
	switch cfg.WeatherProvider {
	case config.ProviderOpenMeteo:
		provider = providers.NewOpenMeteoProvider(httpCfg)
	default:
		provider = providers.NewOpenWeatherProvider(httpCfg, cfg.OpenWeatherAPIKey)
	}

	log.Printf("INFO: geocoder=%s provider=%s country=%q", geocoder.Name(), provider.Name(), cfg.GeocodeCountry)
	return weather.NewService(geocoder, provider)
}

// runOnce prints a single text dashboard and returns the process exit code.
func runOnce(service *weather.Service, location string, timeout time.Duration) int {
	// geocode + current + forecast, each bounded by the client timeout
	ctx, cancel := context.WithTimeout(context.Background(), 3*timeout)
	defer cancel()

	report, err := service.Build(ctx, location)
	if err != nil {
		log.Printf("ERROR: %v", err)
		return 1
	}
	if err := render.Text(os.Stdout, report); err != nil {
		log.Printf("ERROR: rendering dashboard: %v", err)
		return 1
	}
	return 0
}
