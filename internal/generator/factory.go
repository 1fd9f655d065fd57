package generator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/llm"
	"github.com/promoforge/adscript/internal/prompt"
	"github.com/promoforge/adscript/internal/script"
	"github.com/promoforge/adscript/internal/utils"
)

// FlowConfig represents the minimal config needed to build a flow.
type FlowConfig struct {
	Model       string
	Temperature float32
	// ParseRetries bounds the corrective re-asks after a schema-parse
	// failure. 0 disables the retry entirely.
	ParseRetries int
}

// Input is the input to the compiled flow
type Input struct {
	NewsText string
}

// Result is the output from the flow execution
type Result struct {
	Script *script.Output
	// Raw is the last model reply, kept for diagnostics on parse failure.
	Raw string
	// Attempts counts model calls made, including corrective re-asks.
	Attempts int
}

// Flow is a compiled runnable pipeline
type Flow interface {
	Run(ctx context.Context, in Input) (Result, error)
}

// Factory assembles a Flow from the prompt builder and an LLM provider.
type Factory struct {
	provider llm.Provider
	builder  *prompt.Builder
}

func NewFactory(provider llm.Provider, builder *prompt.Builder) *Factory {
	return &Factory{provider: provider, builder: builder}
}

func (f *Factory) Build(cfg FlowConfig) Flow {
	return &scriptFlow{
		cfg:      cfg,
		provider: f.provider,
		builder:  f.builder,
	}
}

// scriptFlow is the linear prompt -> model -> parse chain.
type scriptFlow struct {
	cfg      FlowConfig
	provider llm.Provider
	builder  *prompt.Builder
}

func (s *scriptFlow) Run(ctx context.Context, in Input) (Result, error) {
	rendered, err := s.builder.Build(ctx, in.NewsText)
	if err != nil {
		return Result{}, err
	}

	modelCfg := llm.ModelConfig{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
	}

	res := Result{}
	ask := rendered
	for {
		res.Attempts++

		raw, err := s.provider.Generate(ctx, ask, modelCfg)
		if err != nil {
			// Connection and model errors surface immediately; only a
			// schema-parse failure earns a re-ask.
			return res, err
		}
		res.Raw = raw

		out, perr := script.Parse(raw)
		if perr == nil {
			res.Script = out
			return res, nil
		}

		if res.Attempts > s.cfg.ParseRetries {
			return res, perr
		}

		utils.Zlog.Warn("Model reply failed schema parse, re-asking",
			zap.Int("attempt", res.Attempts),
			zap.Error(perr))

		ask = fmt.Sprintf("%s\n\nYour previous response was invalid: %v.\nRespond again with only a valid JSON object matching the required structure.", rendered, perr)
	}
}
