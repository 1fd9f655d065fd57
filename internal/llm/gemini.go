package llm

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/promoforge/adscript/internal/utils"
)

// GeminiProvider is the hosted-model alternative to Ollama. It rotates
// requests across multiple API keys round-robin to stay under per-key rate
// limits.
type GeminiProvider struct {
	models   []model.BaseChatModel
	model    string
	keyIndex uint64 // atomic counter for round-robin selection
}

func NewGeminiProvider(ctx context.Context, apiKeys []string, modelName string, temperature float32) (*GeminiProvider, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}

	temp := temperature
	models := make([]model.BaseChatModel, len(apiKeys))
	for i, key := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: key,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client for key %d: %w", i+1, err)
		}

		chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       modelName,
			Temperature: &temp,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model for key %d: %w", i+1, err)
		}

		models[i] = chatModel
	}

	utils.Zlog.Info("Created multi-key Gemini provider with round-robin rotation",
		zap.Int("key_count", len(apiKeys)),
		zap.String("model", modelName))

	return &GeminiProvider{models: models, model: modelName}, nil
}

// nextModel returns the next chat model round-robin. Thread-safe.
func (p *GeminiProvider) nextModel() model.BaseChatModel {
	if len(p.models) == 1 {
		return p.models[0]
	}
	idx := atomic.AddUint64(&p.keyIndex, 1)
	return p.models[idx%uint64(len(p.models))]
}

// Generate implements Provider.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string, cfg ModelConfig) (string, error) {
	opts := []model.Option{
		model.WithTemperature(cfg.Temperature),
	}
	if cfg.Model != "" {
		opts = append(opts, model.WithModel(cfg.Model))
	}

	msg, err := p.nextModel().Generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, opts...)
	if err != nil {
		return "", classifyErr(err, modelOrDefault(cfg.Model, p.model))
	}
	return msg.Content, nil
}
