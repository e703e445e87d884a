package translate

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for the generation call: every
// line-ending variant becomes a single "\n" and control characters
// other than newline and tab are stripped.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
