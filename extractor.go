package noveltrans

// Extractor assembles a Chapter from raw markup using a rule set.
// Implementations differ in how they locate elements (string proximity,
// DOM tree, whole-page heuristics) but share the fallback contract:
// the returned chapter always has a non-empty Title and a Body free of
// markup, and extraction fails with EINSUFFICIENT rather than returning
// a body below the minimum viable length.
type Extractor interface {
	Extract(markup string, rules RuleSet) (*Chapter, error)
}

// FieldExtractor locates a single field's content by selector list.
// Kept as a separate interface so the proximity-scan implementation can
// be swapped for a tree-based one without changing assembly logic.
type FieldExtractor interface {
	// ExtractField returns the inner content of the first element
	// matched by the selector list, in priority order. The bool
	// result is false when no selector matched.
	ExtractField(markup string, selectors []string) (string, bool)

	// ExtractLink returns the href of the anchor nearest to the
	// first selector occurrence.
	ExtractLink(markup string, selectors []string) (string, bool)
}
