package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	LogLevel    string
	ServiceName string
	Environment string
	ServerPort  string

	// LLM backend selection: "ollama" (default) or "gemini"
	Provider string

	OllamaHost  string
	OllamaModel string
	Temperature float32

	GeminiAPIKeys []string
	GeminiModel   string

	// ParseRetries is the number of corrective re-asks allowed when the
	// model's reply does not decode against the output schema.
	ParseRetries int

	// MaxInputChars caps the news text handed to the model; longer inputs
	// are trimmed on chunk boundaries.
	MaxInputChars int

	// DatabaseURL is optional; when empty the script history store is disabled.
	DatabaseURL string
}

func LoadConfig() (*Config, error) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "adscript"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = "ollama"
	}
	if provider != "ollama" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q (want ollama or gemini)", provider)
	}

	ollamaHost := os.Getenv("OLLAMA_HOST")
	if ollamaHost == "" {
		ollamaHost = "http://localhost:11434"
	}

	ollamaModel := os.Getenv("OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "llama3.1:8b"
	}

	temperature := float32(0.7)
	if t := os.Getenv("TEMPERATURE"); t != "" {
		parsed, err := strconv.ParseFloat(t, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid TEMPERATURE %q: %w", t, err)
		}
		temperature = float32(parsed)
	}

	// Comma-separated Gemini API keys, rotated round-robin by the provider
	var geminiAPIKeys []string
	for _, key := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			geminiAPIKeys = append(geminiAPIKeys, key)
		}
	}
	if provider == "gemini" && len(geminiAPIKeys) == 0 {
		return nil, errors.New("GEMINI_API_KEYS is required when LLM_PROVIDER=gemini")
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}

	parseRetries := 1 // default value
	if pr := os.Getenv("PARSE_RETRIES"); pr != "" {
		if parsed, err := strconv.Atoi(pr); err == nil && parsed >= 0 {
			parseRetries = parsed
		}
	}

	maxInputChars := 6000 // default value
	if mc := os.Getenv("MAX_INPUT_CHARS"); mc != "" {
		if parsed, err := strconv.Atoi(mc); err == nil && parsed > 0 {
			maxInputChars = parsed
		}
	}

	return &Config{
		LogLevel:      logLevel,
		ServiceName:   serviceName,
		Environment:   environment,
		ServerPort:    serverPort,
		Provider:      provider,
		OllamaHost:    ollamaHost,
		OllamaModel:   ollamaModel,
		Temperature:   temperature,
		GeminiAPIKeys: geminiAPIKeys,
		GeminiModel:   geminiModel,
		ParseRetries:  parseRetries,
		MaxInputChars: maxInputChars,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}, nil
}

// Model returns the model identifier for the active provider.
func (c *Config) Model() string {
	if c.Provider == "gemini" {
		return c.GeminiModel
	}
	return c.OllamaModel
}
