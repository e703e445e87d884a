// Package trafilatura implements heuristic chapter extraction for
// sites no rule set covers. It ignores selector lists and lets
// go-trafilatura find the main content, then applies the shared
// title and ordinal fallbacks.
package trafilatura

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mwielbut/noveltrans"
	"golang.org/x/net/html"
)

// Ensure Extractor implements noveltrans.Extractor at compile time.
var _ noveltrans.Extractor = (*Extractor)(nil)

var newlineRunRe = regexp.MustCompile(`\n{3,}`)

// Extractor wraps go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw markup and returns the main content as a
// chapter. Neighboring-chapter links are not resolved by this engine;
// their absence is valid.
func (e *Extractor) Extract(markup string, rules noveltrans.RuleSet) (*noveltrans.Chapter, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "empty markup input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		return nil, noveltrans.WrapErrorf(err, noveltrans.EINSUFFICIENT, "content extraction failed")
	}

	body := normalizeBody(result.ContentText)
	if noveltrans.CountWords(body) < noveltrans.MinViableWords {
		return nil, noveltrans.Errorf(noveltrans.EINSUFFICIENT,
			"insufficient content: cleaned body has fewer than %d words", noveltrans.MinViableWords)
	}

	var bodyHTML string
	if result.ContentNode != nil {
		bodyHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = noveltrans.PlaceholderTitle
	}

	return &noveltrans.Chapter{
		WorkTitle: strings.TrimSpace(result.Metadata.Sitename),
		Title:     title,
		Ordinal:   noveltrans.OrdinalFromTitle(title),
		Body:      body,
		BodyHTML:  bodyHTML,
		Metadata:  map[string]string{},
	}, nil
}

// normalizeBody collapses excess blank lines between the blocks
// trafilatura emits.
func normalizeBody(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(newlineRunRe.ReplaceAllString(s, "\n\n"))
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
