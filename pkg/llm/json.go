package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
)

// fencePattern matches the first triple-backtick code fence, with or without
// a language tag, and captures its interior.
var fencePattern = regexp.MustCompile("```(?:[a-zA-Z]+)?([\\s\\S]+?)```")

// ExtractJSON recovers a JSON object from completion text that may be
// wrapped in prose or markdown fencing. The text inside the first fence (if
// any) is taken as the working text; within it, the inclusive substring from
// the first '{' to the last '}' is returned. This is a best-effort slice,
// not a parser: the caller must still unmarshal the result and treat parse
// failure as its own error.
func ExtractJSON(response string) (string, error) {
	content := strings.TrimSpace(response)
	if strings.Contains(content, "```") {
		if m := fencePattern.FindStringSubmatch(content); m != nil {
			content = strings.TrimSpace(m[1])
		}
	}

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end < 0 || end < start {
		return "", fmt.Errorf("%w: %q", apperrors.ErrNoJSONFound, truncateForError(response))
	}
	return content[start : end+1], nil
}

// ParseJSONResponse extracts a JSON object from completion text and
// unmarshals it into T. Output that does not parse as-is gets one repair
// pass (unquoted keys, trailing commas, unclosed brackets and similar model
// artifacts); if it still does not parse, apperrors.ErrMalformedJSON is
// returned carrying the offending text for diagnostics.
func ParseJSONResponse[T any](response string) (T, error) {
	var result T

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.RepairJSON(jsonStr)
	if repairErr == nil {
		if err := json.Unmarshal([]byte(repaired), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %q", apperrors.ErrMalformedJSON, truncateForError(jsonStr))
}

// truncateForError bounds raw completion text included in error messages.
func truncateForError(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
