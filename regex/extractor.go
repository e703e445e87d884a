package regex

import (
	"regexp"
	"strings"

	"github.com/mwielbut/noveltrans"
)

// Ensure Extractor implements the domain interfaces at compile time.
var (
	_ noveltrans.Extractor      = (*Extractor)(nil)
	_ noveltrans.FieldExtractor = (*Extractor)(nil)
)

// headingRe locates h1-h3 elements for the title fallback.
var headingRe = regexp.MustCompile(`(?is)<h[1-3][^>]*>(.*?)</h[1-3]\s*>`)

// Extractor assembles chapters by proximity-scanning raw markup.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractField returns the inner content of the first element matched
// by the selector list, in priority order.
func (e *Extractor) ExtractField(markup string, selectors []string) (string, bool) {
	for _, sel := range selectors {
		if content, ok := extractBySelector(markup, sel); ok {
			return content, true
		}
	}
	return "", false
}

// ExtractLink returns the href of the anchor nearest to the first
// selector occurrence, in priority order.
func (e *Extractor) ExtractLink(markup string, selectors []string) (string, bool) {
	for _, sel := range selectors {
		if href, ok := extractLinkBySelector(markup, sel); ok {
			return href, true
		}
	}
	return "", false
}

// Extract assembles a chapter from raw markup.
//
// Body resolution order: the chr-content fast path, then the rule set's
// body selectors, then the cleaned whole document as a last resort.
// A fragment is accepted only when its cleaned text exceeds
// noveltrans.MinBodyLength. Extraction fails with EINSUFFICIENT when
// even the whole-document fallback yields fewer than
// noveltrans.MinViableWords words.
func (e *Extractor) Extract(markup string, rules noveltrans.RuleSet) (*noveltrans.Chapter, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "empty markup input")
	}

	discard := rules.DiscardTags
	if len(discard) == 0 {
		discard = noveltrans.DefaultDiscardTags()
	}

	// Discard subtrees and comments once, before any selector can
	// match inside them.
	pre := StripSubtrees(markup, discard)
	pre = StripComments(pre)

	body, bodyHTML := e.extractBody(pre, rules, discard)
	if noveltrans.CountWords(body) < noveltrans.MinViableWords {
		return nil, noveltrans.Errorf(noveltrans.EINSUFFICIENT,
			"insufficient content: cleaned body has fewer than %d words", noveltrans.MinViableWords)
	}

	title := e.extractTitle(pre, rules, discard)

	ordinal := ""
	if raw, ok := e.ExtractField(pre, rules.Ordinal); ok {
		ordinal = cleanInline(raw, discard)
	}
	if ordinal == "" {
		ordinal = noveltrans.OrdinalFromTitle(title)
	}

	workTitle := ""
	if raw, ok := e.ExtractField(pre, rules.WorkTitle); ok {
		workTitle = cleanInline(raw, discard)
	}

	next, _ := e.ExtractLink(pre, rules.Next)
	prev, _ := e.ExtractLink(pre, rules.Prev)

	return &noveltrans.Chapter{
		WorkTitle: workTitle,
		Title:     title,
		Ordinal:   ordinal,
		Body:      body,
		BodyHTML:  bodyHTML,
		NextURL:   next,
		PrevURL:   prev,
		Metadata:  map[string]string{},
	}, nil
}

// extractBody returns the cleaned body text and, when a selector
// matched, the raw fragment it came from.
func (e *Extractor) extractBody(pre string, rules noveltrans.RuleSet, discard []string) (string, string) {
	if frag, ok := extractBySelector(pre, noveltrans.BodyFastPath); ok {
		if text := Clean(frag, discard); len(text) > noveltrans.MinBodyLength {
			return text, frag
		}
	}

	for _, sel := range rules.Body {
		frag, ok := extractBySelector(pre, sel)
		if !ok {
			continue
		}
		if text := Clean(frag, discard); len(text) > noveltrans.MinBodyLength {
			return text, frag
		}
	}

	// Last resort: strip the whole document. Low precision, but a
	// record with some body beats an empty one.
	return Clean(pre, discard), ""
}

// extractTitle resolves the chapter title: selector list, then any
// h1-h3 heading mentioning "chapter", then the literal placeholder.
func (e *Extractor) extractTitle(pre string, rules noveltrans.RuleSet, discard []string) string {
	if raw, ok := e.ExtractField(pre, rules.Title); ok {
		if title := cleanInline(raw, discard); title != "" {
			return title
		}
	}

	for _, m := range headingRe.FindAllStringSubmatch(pre, -1) {
		text := cleanInline(m[1], discard)
		if text != "" && strings.Contains(strings.ToLower(text), "chapter") {
			return text
		}
	}

	return noveltrans.PlaceholderTitle
}
