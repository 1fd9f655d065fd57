package llm

import (
	"context"
	"fmt"

	"github.com/promoforge/adscript/internal/config"
)

// ModelConfig contains per-request model settings
type ModelConfig struct {
	Model       string
	Temperature float32
}

// Provider abstracts the text-generation call; implementations wrap Eino
// chat models. Errors are classified into the package sentinels where the
// cause is recognizable.
type Provider interface {
	Generate(ctx context.Context, prompt string, cfg ModelConfig) (string, error)
}

// NewProvider builds the provider selected by the configuration.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.GeminiAPIKeys, cfg.GeminiModel, cfg.Temperature)
	case "ollama":
		return NewOllamaProvider(ctx, cfg.OllamaHost, cfg.OllamaModel, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
