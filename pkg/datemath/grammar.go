package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// maxOffset bounds "in N days|weeks|months" so AddDate stays in a sane range.
const maxOffset = 10000

type tokenKind int

const (
	kindDay      tokenKind = iota // names a calendar day, no clock time
	kindClock                     // names a clock time, no day
	kindDateTime                  // names both
)

// rule recognises one family of expressions. resolve receives the
// submatches of re and returns the instant it denotes relative to base.
type rule struct {
	kind    tokenKind
	re      *regexp.Regexp
	resolve func(p *Parser, groups []string, base time.Time) (time.Time, error)
}

const weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

var rules = []rule{
	{
		kind: kindDay,
		re:   regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			return p.Parse(g[1], base)
		},
	},
	{
		kind: kindDay,
		re:   regexp.MustCompile(`(?i)\bnext\s+(week|month)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			return p.Parse("next "+g[1], base)
		},
	},
	{
		kind: kindDay,
		re:   regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			return p.parseInDuration(strings.ToLower("in "+g[1]+" "+g[2]), base)
		},
	},
	{
		kind: kindDay,
		re:   regexp.MustCompile(`(?i)\b(?:on\s+)?(?:(next|this)\s+)?(` + weekdayAlt + `)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			day := strings.ToLower(g[2])
			if strings.EqualFold(g[1], "next") {
				return p.parseNextWeekday("next "+day, base)
			}
			return p.upcomingWeekday(weekdays[day], base), nil
		},
	},
	{
		kind: kindDay,
		re:   regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			return p.parseLiteral(g[0])
		},
	},
	{
		kind: kindDay,
		re:   regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			return p.parseLiteral(g[0])
		},
	},
	{
		kind: kindDateTime,
		re:   regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}(?::\d{2})?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			return p.parseLiteral(g[0])
		},
	},
	{
		kind: kindClock,
		re:   regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			hour, minute, err := clock(g[1], g[2])
			if err != nil {
				return base, err
			}
			if hour < 1 || hour > 12 {
				return base, fmt.Errorf("hour %d out of range for %q: %w", hour, g[0], ErrInvalidDate)
			}
			hour %= 12
			if strings.EqualFold(g[3], "pm") {
				hour += 12
			}
			return p.atClock(base, hour, minute), nil
		},
	},
	{
		kind: kindClock,
		re:   regexp.MustCompile(`(?i)\bat\s+(\d{1,2}):(\d{2})\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			hour, minute, err := clock(g[1], g[2])
			if err != nil {
				return base, err
			}
			if hour > 23 {
				return base, fmt.Errorf("hour %d out of range for %q: %w", hour, g[0], ErrInvalidDate)
			}
			return p.atClock(base, hour, minute), nil
		},
	},
	{
		kind: kindClock,
		re:   regexp.MustCompile(`(?i)\b(?:at\s+)?(noon|midnight)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, error) {
			if strings.EqualFold(g[1], "noon") {
				return p.atClock(base, 12, 0), nil
			}
			return p.atClock(base, 0, 0), nil
		},
	},
}

// clock converts hour and optional minute digits, validating the minute.
func clock(hourDigits, minuteDigits string) (int, int, error) {
	hour, err := strconv.Atoi(hourDigits)
	if err != nil {
		return 0, 0, fmt.Errorf("hour %q: %w", hourDigits, ErrInvalidDate)
	}
	minute := 0
	if minuteDigits != "" {
		minute, err = strconv.Atoi(minuteDigits)
		if err != nil || minute > 59 {
			return 0, 0, fmt.Errorf("minute %q: %w", minuteDigits, ErrInvalidDate)
		}
	}
	return hour, minute, nil
}

// parseLiteral resolves an absolute date literal in the parser's location.
func (p *Parser) parseLiteral(literal string) (time.Time, error) {
	t, err := dateparse.ParseIn(literal, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("date literal %q: %v: %w", literal, err, ErrInvalidDate)
	}
	return t.In(p.location), nil
}
