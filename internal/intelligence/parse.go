package intelligence

import (
	"strings"

	"github.com/mseverin/brandforge/internal/llm"
)

const (
	parsedMarker = "---PARSED---"
	endMarker    = "---END---"
)

// ParseStoryReply splits a story session reply into its conversational part
// and the structured fields block. The model is instructed to emit
//
//	<prose>
//	---PARSED---
//	{"key": "value"}
//	---END---
//
// but replies degrade in the wild: missing markers, missing end marker,
// malformed JSON. Parsing is tolerant: the conversational text always
// survives, and fields is nil when nothing usable was found. Non-string
// values inside the object are dropped.
func ParseStoryReply(raw string) (conversational string, fields map[string]string) {
	markerIdx := strings.Index(raw, parsedMarker)
	if markerIdx == -1 {
		return strings.TrimSpace(raw), nil
	}

	conversational = strings.TrimSpace(raw[:markerIdx])

	rest := raw[markerIdx+len(parsedMarker):]
	if endIdx := strings.Index(rest, endMarker); endIdx != -1 {
		rest = rest[:endIdx]
	}

	parsed, err := llm.ExtractFlexibleMap(rest)
	if err != nil {
		return conversational, nil
	}

	fields = make(map[string]string, len(parsed))
	for k, v := range parsed {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return conversational, fields
}
