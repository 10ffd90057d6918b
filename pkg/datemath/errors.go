package datemath

import "errors"

// ErrInvalidDate is returned when text is recognised as a date or time but
// does not denote a real instant (e.g. "2024-02-30", "at 25:10", "13pm").
var ErrInvalidDate = errors.New("invalid date")
