package naturallanguage

import (
	"time"

	"todo-tracker/internal/model"
)

// Result is what Parse extracts from one sentence. Every field except
// Title is optional and nil when the sentence did not mention it.
type Result struct {
	Title    string
	DueDate  *time.Time
	Priority *model.Priority
	Labels   *string // comma-joined, sigils stripped, in order of appearance
}

// TemporalMatch is a date/time expression a Resolver located in text.
type TemporalMatch struct {
	Index int    // byte offset of Text in the resolved string
	Text  string // literal span as it appears in the input
	Time  time.Time
}
