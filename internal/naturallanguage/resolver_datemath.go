package naturallanguage

import (
	"time"

	"todo-tracker/pkg/datemath"
)

type datemathResolver struct {
	parser *datemath.Parser
}

// NewDatemathResolver resolves dates with the built-in datemath grammar.
func NewDatemathResolver(parser *datemath.Parser) Resolver {
	return &datemathResolver{parser: parser}
}

func (r *datemathResolver) Resolve(text string, ref time.Time) (TemporalMatch, bool, error) {
	m, ok, err := r.parser.Find(text, ref)
	if err != nil || !ok {
		return TemporalMatch{}, false, err
	}
	return TemporalMatch{Index: m.Index, Text: m.Text, Time: m.AbsoluteTime}, true, nil
}
