// Package readability implements heuristic chapter extraction using
// go-readability's article scoring. Like the trafilatura engine it
// ignores selector lists; it exists as a second opinion for pages
// where trafilatura's extraction comes up short.
package readability

import (
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/mwielbut/noveltrans"
)

// Ensure Extractor implements noveltrans.Extractor at compile time.
var _ noveltrans.Extractor = (*Extractor)(nil)

var newlineRunRe = regexp.MustCompile(`\n{3,}`)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw markup and returns the main content as a
// chapter. Neighboring-chapter links are not resolved by this engine.
func (e *Extractor) Extract(markup string, rules noveltrans.RuleSet) (*noveltrans.Chapter, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "empty markup input")
	}

	article, err := readability.FromReader(strings.NewReader(markup), nil)
	if err != nil {
		return nil, noveltrans.WrapErrorf(err, noveltrans.EINSUFFICIENT, "content extraction failed")
	}

	body := normalizeBody(article.TextContent)
	if noveltrans.CountWords(body) < noveltrans.MinViableWords {
		return nil, noveltrans.Errorf(noveltrans.EINSUFFICIENT,
			"insufficient content: cleaned body has fewer than %d words", noveltrans.MinViableWords)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = noveltrans.PlaceholderTitle
	}

	return &noveltrans.Chapter{
		WorkTitle: strings.TrimSpace(article.SiteName),
		Title:     title,
		Ordinal:   noveltrans.OrdinalFromTitle(title),
		Body:      body,
		BodyHTML:  article.Content,
		Metadata:  map[string]string{},
	}, nil
}

// normalizeBody collapses excess blank lines between the blocks
// readability emits.
func normalizeBody(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(newlineRunRe.ReplaceAllString(s, "\n\n"))
}
