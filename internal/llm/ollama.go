package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/eino-contrib/ollama/api"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/utils"
)

// OllamaProvider generates text against a locally hosted Ollama server.
type OllamaProvider struct {
	chatModel model.BaseChatModel
	model     string
}

// NewOllamaProvider creates a provider bound to the given server and model.
// JSON output mode is enabled so the model is constrained to emit a single
// JSON object, matching the format instructions in the prompt.
func NewOllamaProvider(ctx context.Context, baseURL, modelName string, temperature float32) (*OllamaProvider, error) {
	chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Minute,
		Model:   modelName,
		Format:  json.RawMessage(`"json"`),
		Options: &api.Options{
			Temperature: temperature,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama chat model: %w", err)
	}

	utils.Zlog.Info("Created Ollama chat model",
		zap.String("base_url", baseURL),
		zap.String("model", modelName))

	return &OllamaProvider{chatModel: chatModel, model: modelName}, nil
}

// Generate implements Provider.
func (p *OllamaProvider) Generate(ctx context.Context, prompt string, cfg ModelConfig) (string, error) {
	opts := []model.Option{
		model.WithTemperature(cfg.Temperature),
	}
	if cfg.Model != "" {
		opts = append(opts, model.WithModel(cfg.Model))
	}

	msg, err := p.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, opts...)
	if err != nil {
		return "", classifyErr(err, modelOrDefault(cfg.Model, p.model))
	}
	return msg.Content, nil
}

func modelOrDefault(m, fallback string) string {
	if m != "" {
		return m
	}
	return fallback
}
