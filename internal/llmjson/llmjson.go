// Package llmjson parses JSON out of language-model output.
//
// Models routinely wrap their JSON in markdown fences or surround it with
// prose. Callers here want a usable structure in every case, so parsing never
// fails hard: strip fences, try a strict parse, salvage the outermost brace
// region, and finally leave the destination at its zero value so the caller's
// defaults apply.
package llmjson

import (
	"encoding/json"
	"strings"
)

// Unmarshal decodes raw model output into dst. The returned bool reports
// whether any JSON was actually decoded; on false, dst is untouched and the
// caller should fall back to its defaults.
func Unmarshal(raw string, dst any) bool {
	cleaned := StripFences(raw)

	if err := json.Unmarshal([]byte(cleaned), dst); err == nil {
		return true
	}

	if region, ok := braceRegion(cleaned); ok {
		if err := json.Unmarshal([]byte(region), dst); err == nil {
			return true
		}
	}
	return false
}

// StripFences removes leading/trailing markdown code fences ("```json", "```")
// from model output.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// braceRegion returns the substring from the first '{' through the last '}'.
func braceRegion(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
