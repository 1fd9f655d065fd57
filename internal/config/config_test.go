package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"LOG_LEVEL", "SERVICE_NAME", "ENVIRONMENT", "SERVER_PORT",
		"LLM_PROVIDER", "OLLAMA_HOST", "OLLAMA_MODEL", "TEMPERATURE",
		"GEMINI_API_KEYS", "GEMINI_MODEL", "PARSE_RETRIES",
		"MAX_INPUT_CHARS", "DATABASE_URL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", cfg.Provider)
	}
	if cfg.OllamaHost != "http://localhost:11434" {
		t.Errorf("OllamaHost = %q", cfg.OllamaHost)
	}
	if cfg.OllamaModel != "llama3.1:8b" {
		t.Errorf("OllamaModel = %q", cfg.OllamaModel)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.ParseRetries != 1 {
		t.Errorf("ParseRetries = %d, want 1", cfg.ParseRetries)
	}
	if cfg.Model() != "llama3.1:8b" {
		t.Errorf("Model() = %q", cfg.Model())
	}
}

func TestLoadConfigGeminiRequiresKeys(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEYS", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig succeeded without GEMINI_API_KEYS")
	}

	t.Setenv("GEMINI_API_KEYS", "key-a, key-b ,")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.GeminiAPIKeys) != 2 || cfg.GeminiAPIKeys[0] != "key-a" || cfg.GeminiAPIKeys[1] != "key-b" {
		t.Errorf("GeminiAPIKeys = %v", cfg.GeminiAPIKeys)
	}
	if cfg.Model() != "gemini-2.0-flash" {
		t.Errorf("Model() = %q", cfg.Model())
	}
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "watsonx")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig accepted an unknown provider")
	}
}
