package llm

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

// An info string (json, JSON, text, ...) on its own line after the opening
// fence is not part of the payload.
var fencePattern = regexp.MustCompile("(?s)```(?:[A-Za-z][\\w+-]*[ \\t]*\\r?\\n|(?i:json))?\\s*(.*?)\\s*```")

// ExtractJSON returns the body of the first fenced code block in text, or
// the trimmed text when there is no fence.
// Applying it to its own output changes nothing.
func ExtractJSON(text string) string {
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// Decode extracts the payload from reply and unmarshals it. When the payload
// is not JSON it returns the extracted string itself.
func Decode(reply string) any {
	payload := ExtractJSON(reply)

	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return payload
	}
	return v
}
