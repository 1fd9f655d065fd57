package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/promoforge/adscript/internal/llm"
	"github.com/promoforge/adscript/internal/prompt"
	"github.com/promoforge/adscript/internal/script"
)

// fakeProvider returns scripted replies (or errors) in order and records
// every prompt it was asked.
type fakeProvider struct {
	replies []string
	err     error
	prompts []string
}

func (f *fakeProvider) Generate(ctx context.Context, p string, cfg llm.ModelConfig) (string, error) {
	f.prompts = append(f.prompts, p)
	if f.err != nil {
		return "", f.err
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

func newFlow(p llm.Provider, retries int) Flow {
	builder := prompt.NewBuilder(script.FormatInstructions())
	return NewFactory(p, builder).Build(FlowConfig{
		Model:        "llama3.1:8b",
		Temperature:  0.7,
		ParseRetries: retries,
	})
}

func TestRunEndToEnd(t *testing.T) {
	provider := &fakeProvider{
		replies: []string{`{"headline":"Bankruptcy Threshold Drops To 200k","video_script":"Did you know the rules changed? Talk to an expert today."}`},
	}
	flow := newFlow(provider, 1)

	res, err := flow.Run(context.Background(), Input{
		NewsText: "From May 2025 the personal bankruptcy debt threshold drops from 500k to 200k.",
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Script.Headline != "Bankruptcy Threshold Drops To 200k" {
		t.Errorf("headline = %q", res.Script.Headline)
	}
	if res.Script.VideoScript != "Did you know the rules changed? Talk to an expert today." {
		t.Errorf("video_script = %q", res.Script.VideoScript)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
	if len(provider.prompts) != 1 || !strings.Contains(provider.prompts[0], "500k to 200k") {
		t.Errorf("prompt did not carry the news text: %q", provider.prompts)
	}
}

func TestRunPropagatesConnectionErrorWithoutRetry(t *testing.T) {
	provider := &fakeProvider{err: llm.ErrConnection}
	flow := newFlow(provider, 3)

	_, err := flow.Run(context.Background(), Input{NewsText: "some news"})
	if !errors.Is(err, llm.ErrConnection) {
		t.Fatalf("error = %v, want ErrConnection", err)
	}
	if len(provider.prompts) != 1 {
		t.Errorf("provider called %d times, want 1 (no retry on connection errors)", len(provider.prompts))
	}
}

func TestRunRetriesOnceOnParseFailure(t *testing.T) {
	provider := &fakeProvider{
		replies: []string{
			"Sure! Here is your script:",
			`{"headline":"X","video_script":"Y"}`,
		},
	}
	flow := newFlow(provider, 1)

	res, err := flow.Run(context.Background(), Input{NewsText: "some news"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
	if len(provider.prompts) != 2 {
		t.Fatalf("provider called %d times, want 2", len(provider.prompts))
	}
	if !strings.Contains(provider.prompts[1], "previous response was invalid") {
		t.Errorf("re-ask prompt lacks the corrective notice: %q", provider.prompts[1])
	}
	if res.Script.Headline != "X" || res.Script.VideoScript != "Y" {
		t.Errorf("unexpected script: %+v", res.Script)
	}
}

func TestRunGivesUpAfterRetryBudget(t *testing.T) {
	provider := &fakeProvider{replies: []string{"still not json"}}
	flow := newFlow(provider, 1)

	res, err := flow.Run(context.Background(), Input{NewsText: "some news"})
	if !errors.Is(err, script.ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
	if res.Script != nil {
		t.Errorf("got partial script %+v alongside error", res.Script)
	}
	if res.Raw != "still not json" {
		t.Errorf("raw reply not preserved for diagnostics: %q", res.Raw)
	}
}

func TestRunZeroRetriesFailsOnFirstBadReply(t *testing.T) {
	provider := &fakeProvider{replies: []string{"not json"}}
	flow := newFlow(provider, 0)

	res, err := flow.Run(context.Background(), Input{NewsText: "some news"})
	if !errors.Is(err, script.ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
	if len(provider.prompts) != 1 {
		t.Errorf("provider called %d times, want 1 (retries disabled)", len(provider.prompts))
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
}

func TestRunRejectsEmptyNewsText(t *testing.T) {
	provider := &fakeProvider{replies: []string{`{"headline":"X","video_script":"Y"}`}}
	flow := newFlow(provider, 0)

	_, err := flow.Run(context.Background(), Input{NewsText: "  "})
	if !errors.Is(err, prompt.ErrEmptyNewsText) {
		t.Fatalf("error = %v, want ErrEmptyNewsText", err)
	}
	if len(provider.prompts) != 0 {
		t.Errorf("provider was called for empty input")
	}
}
