package naturallanguage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// leadingPrepRe matches an "at" or "on" that introduces the span.
var leadingPrepRe = regexp.MustCompile(`(?i)\b(?:at|on)\s+$`)

// Month abbreviations that double as ordinary words ("I may go").
var bareMonths = map[string]bool{
	"jan": true, "feb": true, "mar": true, "apr": true, "may": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
}

type whenResolver struct {
	parser *when.Parser
	loc    *time.Location
}

// NewWhenResolver resolves dates with github.com/olebedev/when using the
// English and common rule sets. Results are expressed in loc.
//
// Matches carved out of a longer literal ("02-30" in "2024-02-30") and bare
// month abbreviations are discarded. A leading "at"/"on" joins the span.
func NewWhenResolver(loc *time.Location) Resolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &whenResolver{parser: w, loc: loc}
}

func (r *whenResolver) Resolve(text string, ref time.Time) (TemporalMatch, bool, error) {
	res, err := r.parser.Parse(text, ref.In(r.loc))
	if err != nil {
		// when only fails while applying a matched rule to its captures.
		return TemporalMatch{}, false, fmt.Errorf("when: %v: %w", err, ErrInvalidDate)
	}
	if res == nil {
		return TemporalMatch{}, false, nil
	}

	start, end, ok := locate(text, TemporalMatch{Index: res.Index, Text: res.Text})
	if !ok || insideLiteral(text, start, end) || bareMonths[strings.ToLower(text[start:end])] {
		return TemporalMatch{}, false, nil
	}
	if loc := leadingPrepRe.FindStringIndex(text[:start]); loc != nil {
		start = loc[0]
	}

	return TemporalMatch{Index: start, Text: text[start:end], Time: res.Time.In(r.loc)}, true, nil
}

// insideLiteral reports whether text[start:end] continues a run of digits
// or date separators on either side.
func insideLiteral(text string, start, end int) bool {
	return (start > 0 && isLiteralByte(text[start-1])) || (end < len(text) && isLiteralByte(text[end]))
}

func isLiteralByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '/'
}
