package services

import (
	"encoding/json"
	"strings"
)

const (
	jsonFenceOpen = "```json"
	fence         = "```"
)

// StripCodeFences removes a leading ```json (or bare ```) marker and a
// trailing ``` marker, trimming whitespace around what remains.
func StripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(cleaned, jsonFenceOpen):
		cleaned = strings.TrimPrefix(cleaned, jsonFenceOpen)
	case strings.HasPrefix(cleaned, fence):
		cleaned = strings.TrimPrefix(cleaned, fence)
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, fence)
	return strings.TrimSpace(cleaned)
}

// ParseStructured decodes model output into target after stripping code
// fences. Failures are reported as *StructuredParseError with the cleaned text.
func ParseStructured(raw string, target any) error {
	cleaned := StripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &StructuredParseError{Cleaned: cleaned, Err: err}
	}
	return nil
}
