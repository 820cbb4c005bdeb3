package fencedjson

import (
	"encoding/json"
	"strings"
)

// Strip removes an optional markdown code fence (``` or ```json) wrapping
// a model response and trims surrounding whitespace. Input without a
// fence is returned trimmed and otherwise untouched.
func Strip(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// Unmarshal strips an optional code fence from s and unmarshals the
// remainder into v. LLMs asked for JSON frequently wrap it in a fence;
// callers own the fallback when this still fails.
func Unmarshal(s string, v any) error {
	return json.Unmarshal([]byte(Strip(s)), v)
}
