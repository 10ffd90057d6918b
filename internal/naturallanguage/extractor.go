package naturallanguage

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"todo-tracker/internal/model"
)

var (
	priorityRe = regexp.MustCompile(`(?i)(priority:|p:)\s*(low|medium|high|urgent)`)
	labelRe    = regexp.MustCompile(`(#\w+|@\w+)`)
)

// Parse runs the stages in a fixed order: due date, priority, labels.
// Each stage sees the text the previous one left behind, so a date phrase
// is located while the sentence is still intact.
func (e *implExtractor) Parse(text string) (Result, error) {
	working, dueDate, err := e.extractDueDate(text)
	if err != nil {
		return Result{}, err
	}

	working, priority := extractPriority(working)
	working, labels := extractLabels(working)

	return Result{
		Title:    strings.TrimSpace(working),
		DueDate:  dueDate,
		Priority: priority,
		Labels:   labels,
	}, nil
}

// extractDueDate removes the first date/time expression from text.
func (e *implExtractor) extractDueDate(text string) (string, *time.Time, error) {
	m, ok, err := e.resolver.Resolve(text, e.now())
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return text, nil, nil
		}
		return text, nil, err
	}
	if !ok {
		return text, nil, nil
	}

	start, end, ok := locate(text, m)
	if !ok {
		return text, nil, nil
	}
	// A word glued to a sigil is a label, not a date.
	if start > 0 && isSigil(text[start-1]) {
		return text, nil, nil
	}

	due := m.Time
	return cut(text, start, end), &due, nil
}

// extractPriority removes the first "priority:<level>" or "p:<level>" marker.
func extractPriority(text string) (string, *model.Priority) {
	loc := priorityRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, nil
	}

	p, ok := model.ParsePriority(text[loc[4]:loc[5]])
	if !ok {
		return text, nil
	}
	return cut(text, loc[0], loc[1]), &p
}

// extractLabels removes every #label and @label token.
func extractLabels(text string) (string, *string) {
	locs := labelRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}

	names := make([]string, len(locs))
	for i, loc := range locs {
		names[i] = text[loc[0]+1 : loc[1]]
	}

	// Right to left so earlier offsets stay valid.
	for i := len(locs) - 1; i >= 0; i-- {
		text = cut(text, locs[i][0], locs[i][1])
	}

	labels := strings.Join(names, ",")
	return text, &labels
}

func isSigil(b byte) bool {
	return b == '#' || b == '@'
}
