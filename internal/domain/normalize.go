package domain

import (
	"strings"
)

// NormalizeName prepares a user-facing name for storage and comparison:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved, so "Paris Trip" and "paris trip" stay distinct.
func NormalizeName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
