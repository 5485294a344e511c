package utils

import (
	"fmt"
	"strings"
)

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// Excerpt returns at most limit bytes of body as valid UTF-8, with
// surrounding whitespace trimmed.
func Excerpt(body []byte, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(body) > limit {
		body = body[:limit]
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(body), ""))
}
