package regex

import (
	"regexp"
	"strings"
	"sync"
)

// maxStripPasses bounds the repeated tag-strip passes that resolve
// malformed nested angle-bracket sequences.
const maxStripPasses = 3

var (
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	breakTagRe   = regexp.MustCompile(`(?i)</?p(?:\s[^>]*)?/?>|<br(?:\s[^>]*)?/?>`)
	anyTagRe     = regexp.MustCompile(`<[^>]*>`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// subtreeRes caches the per-tag subtree patterns; rule sets reuse a
// small fixed set of tag names.
var subtreeRes sync.Map

func subtreeRe(tag string) *regexp.Regexp {
	if v, ok := subtreeRes.Load(tag); ok {
		re, _ := v.(*regexp.Regexp)
		return re
	}
	q := regexp.QuoteMeta(strings.ToLower(tag))
	// Greedy on purpose: nested same-tag blocks are removed whole,
	// at the cost of over-removal between sibling blocks.
	re := regexp.MustCompile(`(?is)<` + q + `\b[^>]*>.*</` + q + `\s*>`)
	subtreeRes.Store(tag, re)
	return re
}

// StripSubtrees removes each listed tag together with its full content.
// Matching is case-insensitive and dot-matches-newline. Subtrees are
// replaced with a space so surrounding words do not fuse.
func StripSubtrees(markup string, tags []string) string {
	for _, tag := range tags {
		markup = subtreeRe(tag).ReplaceAllString(markup, " ")
	}
	return markup
}

// StripComments removes HTML comments, leaving a space in their place.
func StripComments(markup string) string {
	return commentRe.ReplaceAllString(markup, " ")
}

// Clean converts a raw markup fragment to plain text. In order: discard
// configured subtrees, remove comments, turn paragraph and line-break
// tags into double newlines, strip remaining tags (up to maxStripPasses
// passes, stopping early once a pass changes nothing), decode character
// references, drop stray angle brackets, and normalize whitespace.
//
// The output contains no tag delimiters and no references from the
// decoder's named table.
func Clean(fragment string, discardTags []string) string {
	s := StripSubtrees(fragment, discardTags)
	s = StripComments(s)
	s = breakTagRe.ReplaceAllString(s, "\n\n")

	for i := 0; i < maxStripPasses; i++ {
		next := anyTagRe.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}

	s = DecodeEntities(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")

	return normalizeWhitespace(s)
}

// normalizeWhitespace collapses space/tab runs to a single space,
// trims each line, collapses 3+ newlines to exactly 2, and trims the
// whole result.
func normalizeWhitespace(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// cleanInline is Clean for single-line fields: newlines collapse to
// spaces.
func cleanInline(fragment string, discardTags []string) string {
	s := Clean(fragment, discardTags)
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}
