package noveltrans

import (
	"regexp"
	"strings"
)

// PlaceholderTitle is used when no title selector or heuristic matched.
const PlaceholderTitle = "Chapter"

// MinBodyLength is the minimum cleaned length, in characters, for an
// extracted fragment to be accepted as the chapter body.
const MinBodyLength = 100

// MinViableWords is the minimum number of words a chapter body must
// contain after every fallback; shorter bodies are reported as an
// insufficient-content condition rather than returned.
const MinViableWords = 5

// Chapter is the assembled result of extracting one chapter page.
type Chapter struct {
	// WorkTitle is the title of the enclosing work. Empty if no
	// selector matched.
	WorkTitle string `json:"workTitle,omitempty"`

	// Title is the chapter title. Never empty after assembly; falls
	// back to PlaceholderTitle.
	Title string `json:"title"`

	// Ordinal is the chapter's numeric or string identifier. May be
	// derived from Title when no selector matched. Empty if unknown.
	Ordinal string `json:"ordinal,omitempty"`

	// Body is the cleaned, paragraph-preserving plain text of the
	// chapter. It contains no markup tags, comments, script content
	// or decodable character references.
	Body string `json:"body"`

	// BodyHTML is the raw matched body fragment before cleaning,
	// kept for markdown conversion. Empty for whole-document
	// fallback extractions.
	BodyHTML string `json:"-"`

	// PrevURL and NextURL point at adjacent chapters. Absolute or
	// relative; empty if not found.
	PrevURL string `json:"prevUrl,omitempty"`
	NextURL string `json:"nextUrl,omitempty"`

	// ContentHash identifies the body content. Set by the pipeline,
	// not by extractors.
	ContentHash string `json:"contentHash,omitempty"`

	// Metadata is a free-form extension slot preserved through the
	// pipeline.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate returns an error if the chapter violates assembly invariants.
func (c *Chapter) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "chapter title required")
	}
	if c.Body == "" {
		return Errorf(EINVALID, "chapter body required")
	}
	return nil
}

// ordinalRe matches digits following the word "chapter" in a title.
var ordinalRe = regexp.MustCompile(`(?i)chapter\s*#?(\d+)`)

// OrdinalFromTitle derives a chapter ordinal from a resolved title,
// e.g. "Chapter 12: The Storm" yields "12". Returns "" when the title
// carries no recognizable ordinal.
func OrdinalFromTitle(title string) string {
	m := ordinalRe.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return m[1]
}

// CountWords counts whitespace-delimited words. Used for the
// minimum-viable-content check, where newline-separated paragraphs
// must count as words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
