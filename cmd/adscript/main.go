// Command adscript turns a news item into video-ad material: a headline and
// a short voice-over script, generated by a locally hosted model.
//
// The news text comes from exactly one of -text, -file (txt/md/pdf) or -url.
// Exit codes: 0 success, 1 usage/config, 2 model server unreachable,
// 3 model not found, 4 unparseable model output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/config"
	"github.com/promoforge/adscript/internal/generator"
	"github.com/promoforge/adscript/internal/llm"
	"github.com/promoforge/adscript/internal/prompt"
	"github.com/promoforge/adscript/internal/script"
	"github.com/promoforge/adscript/internal/source"
	"github.com/promoforge/adscript/internal/utils"
)

const (
	exitUsage         = 1
	exitConnection    = 2
	exitModelNotFound = 3
	exitParse         = 4
)

func main() {
	_ = godotenv.Load()

	var (
		text        = flag.String("text", "", "news text to turn into an ad script")
		file        = flag.String("file", "", "path to a news file (.txt, .md or .pdf)")
		newsURL     = flag.String("url", "", "URL of a news page to load")
		modelFlag   = flag.String("model", "", "model identifier (overrides config)")
		temperature = flag.Float64("temperature", -1, "sampling temperature (overrides config)")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(exitUsage)
	}
	if *modelFlag != "" {
		cfg.OllamaModel = *modelFlag
		cfg.GeminiModel = *modelFlag
	}
	if *temperature >= 0 {
		cfg.Temperature = float32(*temperature)
	}

	cleanup := utils.InitLogger(cfg)
	defer cleanup()

	ctx := context.Background()

	resolver, err := source.NewResolver(ctx, cfg.MaxInputChars)
	if err != nil {
		fail(err)
	}

	newsText, err := resolver.Resolve(ctx, source.Options{
		Text: *text,
		File: *file,
		URL:  *newsURL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(exitUsage)
	}

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		fail(err)
	}

	builder := prompt.NewBuilder(script.FormatInstructions())
	flow := generator.NewFactory(provider, builder).Build(generator.FlowConfig{
		Model:        cfg.Model(),
		Temperature:  cfg.Temperature,
		ParseRetries: cfg.ParseRetries,
	})

	utils.Zlog.Info("Sending request to model",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model()))

	res, err := flow.Run(ctx, generator.Input{NewsText: newsText})
	if err != nil {
		reportFailure(cfg, res, err)
	}

	fmt.Printf("Headline: %s\n", res.Script.Headline)
	fmt.Printf("\nVideo Script:\n%s\n", res.Script.VideoScript)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(exitUsage)
}

// reportFailure prints a kind-specific remediation hint and exits with the
// matching code.
func reportFailure(cfg *config.Config, res generator.Result, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	switch {
	case errors.Is(err, llm.ErrConnection):
		fmt.Fprintf(os.Stderr, "Hint: check that the model server is running and reachable at %s.\n", cfg.OllamaHost)
		os.Exit(exitConnection)
	case errors.Is(err, llm.ErrModelNotFound):
		fmt.Fprintf(os.Stderr, "Hint: the model %q is not available; pull it first (e.g. `ollama pull %s`).\n", cfg.Model(), cfg.Model())
		os.Exit(exitModelNotFound)
	case errors.Is(err, script.ErrParse):
		fmt.Fprintln(os.Stderr, "Hint: the model reply did not match the expected JSON structure. Raw reply follows:")
		fmt.Fprintln(os.Stderr, res.Raw)
		os.Exit(exitParse)
	default:
		os.Exit(exitUsage)
	}
}
