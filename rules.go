package noveltrans

// A selector is a literal attribute fragment such as `id="chr-content"`
// used to locate an element by case-insensitive proximity search.
// Selector lists are ordered by priority: the first match wins.

// RuleSet bundles the selectors for every extraction target plus the
// tags whose subtrees are discarded before extraction. Rule sets are
// immutable values, safe to share across concurrent extractions.
type RuleSet struct {
	Body      []string
	Title     []string
	WorkTitle []string
	Ordinal   []string
	Next      []string
	Prev      []string

	// DiscardTags lists tag names whose entire subtree is removed
	// prior to extraction (scripts, navigation, ad containers).
	DiscardTags []string
}

// DefaultDiscardTags are removed before extraction in every rule set.
func DefaultDiscardTags() []string {
	return []string{"script", "style", "noscript", "iframe", "ins", "nav", "header", "footer", "form"}
}

// BodyFastPath is the single most common content-container selector,
// tried before the full body list.
const BodyFastPath = `id="chr-content"`

// DefaultRuleSet returns the generic rule set used when no site-specific
// set applies.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Body: []string{
			`id="chr-content"`,
			`id="chapter-content"`,
			`class="chapter-content"`,
			`id="novel_content"`,
			`class="reading-content"`,
			`class="entry-content"`,
			`id="content"`,
		},
		Title: []string{
			`class="chr-title"`,
			`class="chapter-title"`,
			`id="chapter-title"`,
			`class="entry-title"`,
		},
		WorkTitle: []string{
			`class="novel-title"`,
			`id="novel-title"`,
			`class="book-name"`,
			`class="truyen-title"`,
		},
		Ordinal: []string{
			`class="chapter-number"`,
			`id="chapter-number"`,
		},
		Next: []string{
			`id="next_chap"`,
			`class="next_chap"`,
			`rel="next"`,
			`class="btn-next"`,
		},
		Prev: []string{
			`id="prev_chap"`,
			`class="prev_chap"`,
			`rel="prev"`,
			`class="btn-prev"`,
		},
		DiscardTags: DefaultDiscardTags(),
	}
}

// RuleSets returns the named rule sets, keyed by site identifier.
// "generic" is always present.
func RuleSets() map[string]RuleSet {
	return map[string]RuleSet{
		"generic": DefaultRuleSet(),
		"novelfull": {
			Body:        []string{`id="chr-content"`, `id="chapter-content"`},
			Title:       []string{`class="chr-title"`, `class="chapter-title"`},
			WorkTitle:   []string{`class="truyen-title"`, `class="novel-title"`},
			Ordinal:     []string{`class="chr-text"`},
			Next:        []string{`id="next_chap"`},
			Prev:        []string{`id="prev_chap"`},
			DiscardTags: DefaultDiscardTags(),
		},
		"royalroad": {
			Body:        []string{`class="chapter-inner chapter-content"`, `class="chapter-content"`},
			Title:       []string{`class="fic-header"`, `class="chapter-title"`},
			WorkTitle:   []string{`class="fic-title"`},
			Ordinal:     nil,
			Next:        []string{`rel="next"`, `class="btn-next"`},
			Prev:        []string{`rel="prev"`, `class="btn-prev"`},
			DiscardTags: DefaultDiscardTags(),
		},
		"wuxiaworld": {
			Body:        []string{`class="chapter-text"`, `id="chapter-content"`},
			Title:       []string{`class="chapter-heading"`, `class="chapter-title"`},
			WorkTitle:   []string{`class="novel-title"`},
			Ordinal:     nil,
			Next:        []string{`rel="next"`},
			Prev:        []string{`rel="prev"`},
			DiscardTags: DefaultDiscardTags(),
		},
	}
}

// RuleSetFor looks up the rule set for a site identifier.
// The bool result is false when the site is unknown.
func RuleSetFor(site string) (RuleSet, bool) {
	rs, ok := RuleSets()[site]
	return rs, ok
}
