// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Amadeus  AmadeusConfig
	LLM      LLMConfig
	Weather  WeatherConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`

	// RequestTimeout bounds a whole operation, retries and backoff included
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"50s"`
}

// UpstreamConfig holds the per-call timeout and shared retry policy for outbound calls.
type UpstreamConfig struct {
	CallTimeout time.Duration `env:"UPSTREAM_CALL_TIMEOUT" envDefault:"15s"`
	MaxAttempts int           `env:"UPSTREAM_MAX_ATTEMPTS" envDefault:"3"`
	BackoffStep time.Duration `env:"UPSTREAM_BACKOFF_STEP" envDefault:"2s"`
}

// AmadeusConfig holds flight-offer API settings.
type AmadeusConfig struct {
	ClientID     string `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	CurrencyCode string `env:"AMADEUS_CURRENCY" envDefault:"INR"`
	MaxOffers    int    `env:"AMADEUS_MAX_OFFERS" envDefault:"10"`
}

// LLMConfig selects and configures the text provider.
type LLMConfig struct {
	Provider     string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GroqAPIKey   string `env:"GROQ_API_KEY"`
	GroqBaseURL  string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel    string `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
}

// WeatherConfig holds forecast API settings.
type WeatherConfig struct {
	APIKey  string `env:"WEATHER_API_KEY"`
	BaseURL string `env:"WEATHER_BASE_URL" envDefault:"http://api.weatherapi.com/v1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// LLM provider names.
const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Upstream.CallTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_CALL_TIMEOUT must be positive")
	}
	if cfg.Upstream.BackoffStep <= 0 {
		return fmt.Errorf("UPSTREAM_BACKOFF_STEP must be positive")
	}
	if cfg.Upstream.MaxAttempts < 1 {
		return fmt.Errorf("UPSTREAM_MAX_ATTEMPTS must be at least 1, got %d", cfg.Upstream.MaxAttempts)
	}

	if cfg.Amadeus.MaxOffers < 1 || cfg.Amadeus.MaxOffers > 250 {
		return fmt.Errorf("AMADEUS_MAX_OFFERS must be between 1 and 250, got %d", cfg.Amadeus.MaxOffers)
	}
	if len(cfg.Amadeus.CurrencyCode) != 3 {
		return fmt.Errorf("AMADEUS_CURRENCY must be a 3-letter ISO code, got %q", cfg.Amadeus.CurrencyCode)
	}

	switch cfg.LLM.Provider {
	case ProviderGemini, ProviderGroq:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of: gemini, groq; got %q", cfg.LLM.Provider)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// Outside production, missing keys surface as upstream auth failures per call.
	if cfg.IsProduction() {
		if cfg.Amadeus.ClientID == "" || cfg.Amadeus.ClientSecret == "" {
			return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required in production")
		}
		if cfg.LLM.Provider == ProviderGemini && cfg.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
		}
		if cfg.LLM.Provider == ProviderGroq && cfg.LLM.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when LLM_PROVIDER is groq")
		}
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
