package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParse reports a model reply that could not be decoded against the
// output schema. Callers match it with errors.Is.
var ErrParse = errors.New("model output does not match the expected schema")

// Parse decodes a raw model reply into an Output. Both fields must be
// present and non-empty; field values are whitespace-trimmed but otherwise
// returned verbatim. On failure no partial result is returned.
func Parse(raw string) (*Output, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrParse)
	}

	var out Output
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	out.Headline = strings.TrimSpace(out.Headline)
	out.VideoScript = strings.TrimSpace(out.VideoScript)

	for _, f := range fields {
		var v string
		switch f.Name {
		case "headline":
			v = out.Headline
		case "video_script":
			v = out.VideoScript
		}
		if v == "" {
			return nil, fmt.Errorf("%w: missing required field %q", ErrParse, f.Name)
		}
	}

	return &out, nil
}

// stripFences removes a surrounding markdown code block, if any. Local
// models frequently fence their JSON even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
