// Package script defines the structured output contract for generated
// video-ad material: the schema the model is instructed to emit and the
// parser that decodes its raw reply.
package script

import (
	"fmt"
	"strings"
)

// Output is the typed result decoded from the model's reply.
// The word-count targets in the field descriptions are instructions to the
// model, not constraints the parser enforces.
type Output struct {
	Headline    string `json:"headline"`
	VideoScript string `json:"video_script"`
}

type field struct {
	Name        string
	Description string
}

// fields is the single source of truth for the output shape. Both the
// format instructions sent to the model and the required-field validation
// in Parse derive from it.
var fields = []field{
	{
		Name:        "headline",
		Description: "Catchy, media-style headline (5-10 words) for the video.",
	},
	{
		Name: "video_script",
		Description: "Engaging, promotional video script text (approx. 75-100 words, " +
			"for 30-40 seconds runtime) including a hook, problem/opportunity " +
			"explanation based on the news, solution proposal, and a clear call to action (CTA).",
	},
}

// FormatInstructions renders the schema as prompt text. It is constant
// across calls and gets partialed into the prompt template once.
func FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a single JSON object and nothing else. ")
	b.WriteString("Do not wrap it in markdown fences or add commentary. ")
	b.WriteString("The object must have exactly these string properties:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "- %q: %s\n", f.Name, f.Description)
	}
	b.WriteString("\nExample of a well-formed response:\n")
	b.WriteString(exampleResponse)
	return b.String()
}

// exampleResponse is embedded in the format instructions and doubles as the
// round-trip fixture in tests.
const exampleResponse = `{"headline": "New Bankruptcy Rules Change Everything", "video_script": "Thousands of business owners woke up to new rules today..."}`
