package naturallanguage

import (
	"strings"
	"unicode"
)

// locate maps a resolver match onto a [start, end) span of text, with
// surrounding whitespace dropped. Resolvers may report a normalised span
// (different case, padded with separators); when Index does not address
// it, the first case-insensitive occurrence is used instead.
func locate(text string, m TemporalMatch) (int, int, bool) {
	span := strings.TrimSpace(m.Text)
	if span == "" {
		return 0, 0, false
	}

	start := -1
	if m.Index >= 0 && m.Index <= len(text) {
		if i := strings.Index(m.Text, span); i >= 0 {
			s := m.Index + i
			if s+len(span) <= len(text) && strings.EqualFold(text[s:s+len(span)], span) {
				start = s
			}
		}
	}
	if start < 0 {
		start = strings.Index(strings.ToLower(text), strings.ToLower(span))
	}
	if start < 0 || start+len(span) > len(text) {
		return 0, 0, false
	}
	return start, start + len(span), true
}

// cut removes text[start:end]. Whitespace on either side of the seam is
// collapsed into a single space; text that abutted the span with no
// whitespace is joined directly.
func cut(text string, start, end int) string {
	left, right := text[:start], text[end:]
	trimmedLeft := strings.TrimRightFunc(left, unicode.IsSpace)
	trimmedRight := strings.TrimLeftFunc(right, unicode.IsSpace)

	if trimmedLeft == "" || trimmedRight == "" {
		return trimmedLeft + trimmedRight
	}
	if len(trimmedLeft) < len(left) || len(trimmedRight) < len(right) {
		return trimmedLeft + " " + trimmedRight
	}
	return left + right
}
