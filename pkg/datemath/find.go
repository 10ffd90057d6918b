package datemath

import (
	"regexp"
	"time"
)

// joinGapRe is what may separate a day phrase from a clock phrase for the
// two to be read as one expression ("tomorrow at 5pm", "at 5pm, on 2024-05-10").
var joinGapRe = regexp.MustCompile(`(?i)^[\s,]*(?:on\s+)?$`)

type token struct {
	rule   *rule
	start  int
	end    int
	groups []string
}

// Find locates the first date/time expression in text and resolves it
// against base. The leftmost expression wins; on equal starts the longer
// one does. A day phrase directly followed or preceded by a clock phrase
// is merged into one match. Expressions glued to a '#' or '@' sigil are
// treated as labels and skipped.
//
// ok is false when text contains no expression. An expression that is
// recognised but names no real instant yields an error wrapping
// ErrInvalidDate.
func (p *Parser) Find(text string, base time.Time) (Match, bool, error) {
	tokens := scan(text)
	if len(tokens) == 0 {
		return Match{}, false, nil
	}

	first := tokens[0]
	for _, t := range tokens[1:] {
		if t.start < first.start || (t.start == first.start && t.end > first.end) {
			first = t
		}
	}

	at, err := first.rule.resolve(p, first.groups, base)
	if err != nil {
		return Match{}, false, err
	}

	start, end := first.start, first.end
	allDay := first.rule.kind == kindDay

	if partner, ok := complement(text, first, tokens); ok {
		other, err := partner.rule.resolve(p, partner.groups, base)
		if err != nil {
			return Match{}, false, err
		}
		day, clockOf := at, other
		if first.rule.kind == kindClock {
			day, clockOf = other, at
		}
		at = p.atClock(day, clockOf.Hour(), clockOf.Minute())
		end = partner.end
		allDay = false
	}

	return Match{
		Index:        start,
		Text:         text[start:end],
		AbsoluteTime: at,
		IsAllDay:     allDay,
	}, true, nil
}

// scan collects every expression any rule recognises in text.
func scan(text string) []token {
	var tokens []token
	for i := range rules {
		r := &rules[i]
		for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
			if loc[0] > 0 && isSigil(text[loc[0]-1]) {
				continue
			}
			groups := make([]string, len(loc)/2)
			for g := range groups {
				if loc[2*g] >= 0 {
					groups[g] = text[loc[2*g]:loc[2*g+1]]
				}
			}
			tokens = append(tokens, token{rule: r, start: loc[0], end: loc[1], groups: groups})
		}
	}
	return tokens
}

// complement finds the clock phrase that completes a day phrase (or the
// reverse) right after first.
func complement(text string, first token, tokens []token) (token, bool) {
	var want tokenKind
	switch first.rule.kind {
	case kindDay:
		want = kindClock
	case kindClock:
		want = kindDay
	default:
		return token{}, false
	}

	var best token
	found := false
	for _, t := range tokens {
		if t.rule.kind != want || t.start < first.end {
			continue
		}
		if !joinGapRe.MatchString(text[first.end:t.start]) {
			continue
		}
		if !found || t.start < best.start || (t.start == best.start && t.end > best.end) {
			best, found = t, true
		}
	}
	return best, found
}

func isSigil(b byte) bool {
	return b == '#' || b == '@'
}
