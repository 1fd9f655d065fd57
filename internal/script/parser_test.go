package script

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantHeadline string
		wantScript   string
		wantErr      bool
	}{
		{
			name:         "plain JSON",
			input:        `{"headline":"X","video_script":"Y"}`,
			wantHeadline: "X",
			wantScript:   "Y",
		},
		{
			name:         "json fenced block",
			input:        "```json\n{\"headline\":\"X\",\"video_script\":\"Y\"}\n```",
			wantHeadline: "X",
			wantScript:   "Y",
		},
		{
			name:         "plain fenced block",
			input:        "```\n{\"headline\":\"X\",\"video_script\":\"Y\"}\n```",
			wantHeadline: "X",
			wantScript:   "Y",
		},
		{
			name:         "whitespace trimmed, values otherwise verbatim",
			input:        `{"headline":"  Big News: 50% Fewer Filings  ","video_script":"\nCall now.\n"}`,
			wantHeadline: "Big News: 50% Fewer Filings",
			wantScript:   "Call now.",
		},
		{
			name:    "missing video_script",
			input:   `{"headline":"X"}`,
			wantErr: true,
		},
		{
			name:    "missing headline",
			input:   `{"video_script":"Y"}`,
			wantErr: true,
		},
		{
			name:    "whitespace-only field",
			input:   `{"headline":"   ","video_script":"Y"}`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			input:   "Here is your headline: X",
			wantErr: true,
		},
		{
			name:    "empty response",
			input:   "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %+v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("error %v is not ErrParse", err)
				}
				if got != nil {
					t.Errorf("got partial result %+v alongside error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got.Headline != tt.wantHeadline {
				t.Errorf("headline = %q, want %q", got.Headline, tt.wantHeadline)
			}
			if got.VideoScript != tt.wantScript {
				t.Errorf("video_script = %q, want %q", got.VideoScript, tt.wantScript)
			}
		})
	}
}

// The example embedded in the format instructions must itself decode
// losslessly; otherwise we are teaching the model a shape we cannot read.
func TestFormatInstructionsRoundTrip(t *testing.T) {
	instructions := FormatInstructions()

	for _, f := range fields {
		if !strings.Contains(instructions, f.Name) {
			t.Errorf("format instructions do not mention field %q", f.Name)
		}
	}

	out, err := Parse(exampleResponse)
	if err != nil {
		t.Fatalf("embedded example does not parse: %v", err)
	}
	if out.Headline == "" || out.VideoScript == "" {
		t.Fatalf("embedded example decoded with empty fields: %+v", out)
	}
}
