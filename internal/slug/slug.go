// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxLen = 80

var (
	// strip anything that is not a letter, digit, underscore, whitespace or hyphen
	invalidChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	// runs of whitespace or underscores become a single hyphen
	separators = regexp.MustCompile(`[\s_]+`)
	// collapse repeated hyphens
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Make converts a title into a slug: lowercase, invalid characters stripped,
// separator runs collapsed to single hyphens, truncated to 80 characters and
// trimmed of leading/trailing hyphens. Deterministic; an unusable title
// yields "".
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	if r := []rune(s); len(r) > maxLen {
		s = string(r[:maxLen])
	}
	return strings.Trim(s, "-")
}

// WithSuffix appends a short random suffix for collision avoidance. A second
// collision on the same request is treated as improbable enough to surface as
// a conflict instead of retrying.
func WithSuffix(s string) string {
	id := uuid.New()
	return s + "-" + hex.EncodeToString(id[:3])
}
