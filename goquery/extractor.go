// Package goquery implements chapter extraction over a parsed DOM.
// It consumes the same rule sets as the regex engine but resolves
// selectors through a real tree, trading the proximity engine's recall
// on malformed markup for strict element semantics.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwielbut/noveltrans"
)

// Ensure Extractor implements noveltrans.Extractor at compile time.
var _ noveltrans.Extractor = (*Extractor)(nil)

var (
	attrFragmentRe = regexp.MustCompile(`^\s*([a-zA-Z][a-zA-Z0-9_-]*)\s*=\s*"([^"]*)"\s*$`)
	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
	newlineRunRe   = regexp.MustCompile(`\n{3,}`)
)

// Extractor assembles chapters from a parsed document.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and assembles a chapter using the same
// fallback ordering as the proximity engine.
func (e *Extractor) Extract(markup string, rules noveltrans.RuleSet) (*noveltrans.Chapter, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "empty markup input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "failed to parse markup: %v", err)
	}

	discard := rules.DiscardTags
	if len(discard) == 0 {
		discard = noveltrans.DefaultDiscardTags()
	}
	doc.Find(strings.Join(discard, ", ")).Remove()

	body, bodyHTML := e.extractBody(doc, rules)
	if noveltrans.CountWords(body) < noveltrans.MinViableWords {
		return nil, noveltrans.Errorf(noveltrans.EINSUFFICIENT,
			"insufficient content: cleaned body has fewer than %d words", noveltrans.MinViableWords)
	}

	title := e.extractTitle(doc, rules)

	ordinal := firstMatchText(doc, rules.Ordinal)
	if ordinal == "" {
		ordinal = noveltrans.OrdinalFromTitle(title)
	}

	next, _ := extractLink(doc, rules.Next)
	prev, _ := extractLink(doc, rules.Prev)

	return &noveltrans.Chapter{
		WorkTitle: firstMatchText(doc, rules.WorkTitle),
		Title:     title,
		Ordinal:   ordinal,
		Body:      body,
		BodyHTML:  bodyHTML,
		NextURL:   next,
		PrevURL:   prev,
		Metadata:  map[string]string{},
	}, nil
}

func (e *Extractor) extractBody(doc *goquery.Document, rules noveltrans.RuleSet) (string, string) {
	selectors := append([]string{noveltrans.BodyFastPath}, rules.Body...)
	for _, fragment := range selectors {
		sel := doc.Find(cssFor(fragment)).First()
		if sel.Length() == 0 {
			continue
		}
		text := paragraphText(sel)
		if len(text) > noveltrans.MinBodyLength {
			html, err := goquery.OuterHtml(sel)
			if err != nil {
				html = ""
			}
			return text, html
		}
	}

	// Whole-document fallback.
	return paragraphText(doc.Find("body")), ""
}

func (e *Extractor) extractTitle(doc *goquery.Document, rules noveltrans.RuleSet) string {
	if title := firstMatchText(doc, rules.Title); title != "" {
		return title
	}

	var heading string
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := inlineText(sel.Text())
		if text != "" && strings.Contains(strings.ToLower(text), "chapter") {
			heading = text
			return false
		}
		return true
	})
	if heading != "" {
		return heading
	}

	return noveltrans.PlaceholderTitle
}

// cssFor translates an attribute-fragment selector into a CSS
// attribute selector. Class fragments use substring matching to keep
// the proximity engine's tolerance for multi-class attributes.
func cssFor(fragment string) string {
	m := attrFragmentRe.FindStringSubmatch(fragment)
	if m == nil {
		return fragment
	}
	name, value := m[1], m[2]
	if strings.EqualFold(name, "class") {
		return `[class*="` + value + `"]`
	}
	return `[` + name + `="` + value + `"]`
}

// firstMatchText returns the inline text of the first element matched
// by the selector list, in priority order.
func firstMatchText(doc *goquery.Document, selectors []string) string {
	for _, fragment := range selectors {
		sel := doc.Find(cssFor(fragment)).First()
		if sel.Length() == 0 {
			continue
		}
		if text := inlineText(sel.Text()); text != "" {
			return text
		}
	}
	return ""
}

// extractLink resolves a selector to an href: the matched element
// itself if it is an anchor, otherwise the nearest enclosing or first
// contained anchor.
func extractLink(doc *goquery.Document, selectors []string) (string, bool) {
	for _, fragment := range selectors {
		sel := doc.Find(cssFor(fragment)).First()
		if sel.Length() == 0 {
			continue
		}

		if goquery.NodeName(sel) == "a" {
			if href, ok := sel.Attr("href"); ok && href != "" {
				return href, true
			}
		}
		if anchor := sel.Closest("a"); anchor.Length() > 0 {
			if href, ok := anchor.Attr("href"); ok && href != "" {
				return href, true
			}
		}
		if anchor := sel.Find("a[href]").First(); anchor.Length() > 0 {
			if href, ok := anchor.Attr("href"); ok && href != "" {
				return href, true
			}
		}
	}
	return "", false
}

// paragraphText renders a selection as paragraph-separated plain text.
// Paragraph elements become blocks separated by blank lines; elements
// without paragraph children fall back to their whole text.
func paragraphText(sel *goquery.Selection) string {
	var blocks []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := inlineText(p.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) == 0 {
		return normalizeBlock(sel.Text())
	}
	return strings.Join(blocks, "\n\n")
}

func inlineText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}

func normalizeBlock(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(newlineRunRe.ReplaceAllString(s, "\n\n"))
}
