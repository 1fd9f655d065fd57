// Package prompt renders the instruction sent to the model: role and task
// framing, the news text under review, and the format instructions derived
// from the output schema.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// ErrEmptyNewsText is returned when Build is called without any news text.
// The pipeline never reaches the model in that case.
var ErrEmptyNewsText = errors.New("news text must not be empty")

const template = `**Role:** You are an expert copywriter and marketer specializing in creating short, compelling video ad scripts for legal and consulting services. Your task is to turn potentially dry news into engaging content.

**Context:** You will be given news text concerning bankruptcy procedures or recent legislative changes affecting businesses or individuals.

**Task:** Based on the provided news text, generate materials for a 30-40 second promotional video. The goal is to capture the target audience's attention (entrepreneurs, affected citizens), explain the core issue or opportunity from the news, and motivate them to seek consultation or more information.

**Input News Text:**
` + "```" + `
{news_text}
` + "```" + `

**Instructions & Required Output Structure:**

1. **Headline:** Create a catchy, intriguing media-style headline (5-10 words) that grabs attention immediately.
2. **Video Script (30-40 seconds / approx. 75-100 words):**
   - Start with a hook based on the news (e.g., a question or striking fact).
   - Briefly explain the essence of the news: What changed or what situation arose? What are the risks or opportunities for the viewer?
   - Suggest a solution: Hint at expert help, consultation, risk assessment, or subscribing for updates.
   - End with a clear and strong call to action (CTA) prompting the viewer to click a link, call, or submit a request.
   - The text should be dynamic, easy to understand when spoken.

**Format your response strictly according to the following structure:**
{format_instructions}`

// Builder renders the ad-script prompt. The format instructions are fixed
// at construction; only the news text varies per call.
type Builder struct {
	tpl                prompt.ChatTemplate
	formatInstructions string
}

func NewBuilder(formatInstructions string) *Builder {
	return &Builder{
		tpl:                prompt.FromMessages(schema.FString, schema.UserMessage(template)),
		formatInstructions: formatInstructions,
	}
}

// Build returns the fully rendered prompt for the given news text.
func (b *Builder) Build(ctx context.Context, newsText string) (string, error) {
	if strings.TrimSpace(newsText) == "" {
		return "", ErrEmptyNewsText
	}

	msgs, err := b.tpl.Format(ctx, map[string]any{
		"news_text":           newsText,
		"format_instructions": b.formatInstructions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}
	if len(msgs) == 0 {
		return "", errors.New("prompt template rendered no messages")
	}

	return msgs[0].Content, nil
}
