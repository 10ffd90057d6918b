package datemath

import "time"

// Match is a date/time expression located in free text.
type Match struct {
	Index        int       // byte offset of Text in the searched string
	Text         string    // literal matched span
	AbsoluteTime time.Time // resolved instant in the parser's location
	IsAllDay     bool      // true when the expression named a day but no clock time
}
