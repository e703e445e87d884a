package noveltrans

import "strings"

// LimitWords truncates text to at most maxWords words without breaking
// mid-word. Words are sequences separated by the space character, with
// empty tokens omitted. If the text is within budget it is returned
// byte-identical, original whitespace included. When truncation occurs
// the surviving words are rejoined with single spaces, discarding the
// original inter-word whitespace and newline structure; this is an
// accepted lossy behavior of the budgeter.
//
// LimitWords is idempotent for a fixed maxWords.
func LimitWords(text string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}

	words := splitWords(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ")
}

func splitWords(text string) []string {
	parts := strings.Split(text, " ")
	words := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}
