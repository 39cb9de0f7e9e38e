// Package llm provides domain.TextGenerator implementations backed by hosted
// language models.
package llm

import (
	"context"
	"fmt"

	"github.com/trip-planner/trip-planner-service/internal/adapter/upstream"
	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// Generator is a TextGenerator that holds resources to release on shutdown.
type Generator interface {
	domain.TextGenerator
	Close() error
}

// Config selects and configures a provider.
type Config struct {
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
}

// New creates the generator named by cfg.Provider.
func New(ctx context.Context, cfg Config, up *upstream.Client) (Generator, error) {
	switch cfg.Provider {
	case GeminiName:
		return NewGemini(ctx, up, cfg.GeminiAPIKey, cfg.GeminiModel)
	case GroqName:
		return NewGroq(up, cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
