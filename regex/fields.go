package regex

import (
	"regexp"
	"strings"
)

var hrefRe = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)

// extractBySelector returns the inner content of the element containing
// the first case-insensitive occurrence of the selector fragment.
//
// The scan is proximity based, not a tree walk: from the occurrence it
// scans backward to the nearest `<` to recover the opening tag, then
// forward to the first closing tag of the same name (non-nesting). A
// fragment occurring inside an unrelated attribute value can therefore
// produce a false match; that tolerance is deliberate.
func extractBySelector(markup, selector string) (string, bool) {
	lower := strings.ToLower(markup)
	pos := strings.Index(lower, strings.ToLower(selector))
	if pos < 0 {
		return "", false
	}

	open := strings.LastIndex(markup[:pos], "<")
	if open < 0 {
		return "", false
	}

	name := tagNameAt(lower, open+1)
	if name == "" {
		return "", false
	}

	openEnd := strings.Index(markup[open:], ">")
	if openEnd < 0 {
		return "", false
	}
	contentStart := open + openEnd + 1

	closeRel := findClosingTag(lower[contentStart:], name)
	if closeRel < 0 {
		return "", false
	}

	return markup[contentStart : contentStart+closeRel], true
}

// tagNameAt reads the tag name starting at offset in a lowercased
// document. Returns "" when the position does not begin a tag name.
func tagNameAt(lower string, offset int) string {
	end := offset
	for end < len(lower) {
		c := lower[end]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			end++
			continue
		}
		break
	}
	return lower[offset:end]
}

// findClosingTag returns the offset of the first `</name` whose next
// character terminates the tag name, or -1.
func findClosingTag(lower, name string) int {
	needle := "</" + name
	from := 0
	for {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			return -1
		}
		abs := from + idx
		after := abs + len(needle)
		if after >= len(lower) {
			return -1
		}
		if c := lower[after]; c == '>' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			return abs
		}
		from = abs + 1
	}
}

// extractLinkBySelector finds the selector occurrence, scans backward
// for the nearest preceding anchor-tag start, and pulls the href value
// out of that tag.
func extractLinkBySelector(markup, selector string) (string, bool) {
	lower := strings.ToLower(markup)
	pos := strings.Index(lower, strings.ToLower(selector))
	if pos < 0 {
		return "", false
	}

	aStart := lastAnchorStart(lower, pos)
	if aStart < 0 {
		return "", false
	}

	tagEnd := strings.Index(markup[aStart:], ">")
	if tagEnd < 0 {
		return "", false
	}
	tag := markup[aStart : aStart+tagEnd+1]

	m := hrefRe.FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// lastAnchorStart returns the index of the nearest `<a` tag start at or
// before limit, skipping lookalikes such as `<article`.
func lastAnchorStart(lower string, limit int) int {
	for limit >= 0 {
		idx := strings.LastIndex(lower[:limit], "<a")
		if idx < 0 {
			return -1
		}
		after := idx + 2
		if after < len(lower) {
			if c := lower[after]; c == '>' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
				return idx
			}
		}
		limit = idx
	}
	return -1
}
