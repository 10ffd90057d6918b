package naturallanguage

import (
	"fmt"
	"slices"
	"strings"

	"todo-tracker/pkg/datemath"
)

// Date engines selectable through configuration.
const (
	EngineDatemath = "datemath"
	EngineWhen     = "when"
)

// Engines lists every engine NewResolver accepts, default first.
func Engines() []string {
	return []string{EngineDatemath, EngineWhen}
}

// ValidEngine reports whether engine names a known date engine.
func ValidEngine(engine string) bool {
	return slices.Contains(Engines(), strings.ToLower(strings.TrimSpace(engine)))
}

// NewResolver builds the Resolver for engine, expressing results in timezone.
// An empty engine selects EngineDatemath.
//
// EngineWhen consults the datemath grammar first and only hands text it
// does not recognise to github.com/olebedev/when, so absolute and invalid
// literals resolve identically under both engines.
func NewResolver(engine, timezone string) (Resolver, error) {
	engine = strings.ToLower(strings.TrimSpace(engine))
	if engine != "" && !ValidEngine(engine) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}

	p, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, err
	}
	grammar := NewDatemathResolver(p)

	if engine == EngineWhen {
		return NewChainResolver(grammar, NewWhenResolver(p.Location())), nil
	}
	return grammar, nil
}
