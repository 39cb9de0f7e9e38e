// Package main is the entry point for the trip planner service.
//
//	@title						Trip Planner API
//	@version					1.0.0
//	@description				Plans trips end to end: flight journeys, day-by-day itineraries, hotel suggestions and weather.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/trip-planner-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
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

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-planner/trip-planner-service/docs"

	triphttp "github.com/trip-planner/trip-planner-service/internal/adapter/http"
	"github.com/trip-planner/trip-planner-service/internal/adapter/http/middleware"
	"github.com/trip-planner/trip-planner-service/internal/adapter/llm"
	"github.com/trip-planner/trip-planner-service/internal/adapter/pdf"
	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/amadeus"
	"github.com/trip-planner/trip-planner-service/internal/adapter/upstream"
	"github.com/trip-planner/trip-planner-service/internal/adapter/weather"
	"github.com/trip-planner/trip-planner-service/internal/config"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	serviceName     = "trip-planner"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg)
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("llm_provider", cfg.LLM.Provider).
		Msg("Configuration loaded")

	ctx := context.Background()

	up := setupUpstream(cfg, log)
	text, err := llm.New(ctx, llm.Config{
		Provider:     cfg.LLM.Provider,
		GeminiAPIKey: cfg.LLM.GeminiAPIKey,
		GeminiModel:  cfg.LLM.GeminiModel,
		GroqAPIKey:   cfg.LLM.GroqAPIKey,
		GroqBaseURL:  cfg.LLM.GroqBaseURL,
		GroqModel:    cfg.LLM.GroqModel,
	}, up)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create text generator")
	}
	defer func() {
		if err := text.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing text generator")
		}
	}()

	planner := usecase.NewTripPlannerUseCase(usecase.Dependencies{
		Flights: amadeus.NewAdapter(up, amadeus.Config{
			BaseURL:      cfg.Amadeus.BaseURL,
			ClientID:     cfg.Amadeus.ClientID,
			ClientSecret: cfg.Amadeus.ClientSecret,
			CurrencyCode: cfg.Amadeus.CurrencyCode,
			MaxOffers:    cfg.Amadeus.MaxOffers,
		}, log),
		Text:     text,
		Weather:  weather.NewClient(up, cfg.Weather.APIKey, cfg.Weather.BaseURL),
		Renderer: pdf.NewRenderer(timeutil.NewRealClock()),
	}, &usecase.Config{
		OperationTimeout: cfg.Server.RequestTimeout,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	triphttp.RegisterRoutes(e, triphttp.NewTripHandler(planner))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupLogger builds the application logger and installs it as the global one.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: serviceName,
	})
	logger.SetGlobal(log)
	return log
}

// setupUpstream builds the shared outbound client. Every adapter retries
// through it with the same attempts and linear backoff.
func setupUpstream(cfg *config.Config, log *logger.Logger) *upstream.Client {
	policy := retry.DefaultConfig.
		WithMaxAttempts(cfg.Upstream.MaxAttempts).
		WithBackoff(retry.Linear(cfg.Upstream.BackoffStep)).
		WithSleeper(timeutil.NewRealSleeper())

	return upstream.NewClient(upstream.NewHTTPTransport(nil), upstream.Config{
		CallTimeout: cfg.Upstream.CallTimeout,
		Retry:       policy,
	}, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
