package naturallanguage

import "time"

type chainResolver struct {
	resolvers []Resolver
}

// NewChainResolver consults resolvers in order. The first one that finds
// an expression or fails decides the result.
func NewChainResolver(resolvers ...Resolver) Resolver {
	return &chainResolver{resolvers: resolvers}
}

func (c *chainResolver) Resolve(text string, ref time.Time) (TemporalMatch, bool, error) {
	for _, r := range c.resolvers {
		m, ok, err := r.Resolve(text, ref)
		if err != nil || ok {
			return m, ok, err
		}
	}
	return TemporalMatch{}, false, nil
}
