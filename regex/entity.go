// Package regex implements chapter extraction with regular expressions
// and substring proximity scans instead of a markup parser. Source
// sites are heterogeneous and frequently malformed; string-proximity
// matching trades occasional false positives for recall, and keeps the
// engine dependency-free. Callers who want strict tree semantics use
// the goquery engine behind the same interfaces.
package regex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities maps HTML character references to their literal
// characters. Order matters: &amp; is decoded last so that references
// like "&amp;nbsp;" do not decode twice within a pass.
var namedEntities = []struct {
	ref  string
	text string
}{
	{"&nbsp;", " "},
	{"&quot;", `"`},
	{"&apos;", "'"},
	{"&#39;", "'"},
	{"&lsquo;", "‘"},
	{"&rsquo;", "’"},
	{"&ldquo;", "“"},
	{"&rdquo;", "”"},
	{"&ndash;", "–"},
	{"&mdash;", "—"},
	{"&hellip;", "…"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
}

// numericRef matches decimal (&#39;) and hexadecimal (&#x27;) numeric
// character references.
var numericRef = regexp.MustCompile(`&#([xX][0-9a-fA-F]+|[0-9]+);`)

// DecodeEntities replaces HTML character references with their literal
// characters. Numeric references resolve to the Unicode scalar at their
// code point; references to invalid scalars are left unchanged rather
// than failing. Pure function.
func DecodeEntities(s string) string {
	s = decodeNumeric(s)
	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.ref, e.text)
	}
	return s
}

// decodeNumeric resolves numeric references right-to-left over the
// match positions so earlier replacements cannot invalidate later
// offsets.
func decodeNumeric(s string) string {
	matches := numericRef.FindAllStringSubmatchIndex(s, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		digits := s[m[2]:m[3]]

		var n int64
		var err error
		if digits[0] == 'x' || digits[0] == 'X' {
			n, err = strconv.ParseInt(digits[1:], 16, 32)
		} else {
			n, err = strconv.ParseInt(digits, 10, 32)
		}
		if err != nil || !utf8.ValidRune(rune(n)) {
			continue
		}

		s = s[:m[0]] + string(rune(n)) + s[m[1]:]
	}
	return s
}
