package naturallanguage

import (
	"errors"

	"todo-tracker/pkg/datemath"
)

var (
	// ErrInvalidDate marks a recognised date literal that names no real
	// instant. Resolvers wrap it; Parse treats it as "no due date".
	ErrInvalidDate = datemath.ErrInvalidDate

	ErrUnknownEngine = errors.New("unknown date engine")
)
