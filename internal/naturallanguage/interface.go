package naturallanguage

import "time"

// Extractor turns a free-text sentence into structured todo fields.
type Extractor interface {
	// Parse extracts the due date, priority and labels from text and
	// returns what is left as the title. Parse never fails because a
	// pattern is missing; it only returns an error the date resolver
	// raised for a reason other than an invalid date.
	Parse(text string) (Result, error)
}

// Resolver locates the first date/time expression in text, resolving
// relative phrases against ref. ok is false when there is none.
type Resolver interface {
	Resolve(text string, ref time.Time) (m TemporalMatch, ok bool, err error)
}
