package filters

import "strings"

// NegateMarker prefixes a name pattern that must not match
const NegateMarker = "#!"

// Criterion is one name pattern, positive or negated
type Criterion struct {
	Pattern string `json:"pattern"`
	Negated bool   `json:"negated,omitempty"`
}

// ParseCriterion splits off the negate marker
func ParseCriterion(s string) Criterion {
	if rest, ok := strings.CutPrefix(s, NegateMarker); ok {
		return Criterion{Pattern: rest, Negated: true}
	}
	return Criterion{Pattern: s}
}

// ParseCriteria parses every pattern in ss
func ParseCriteria(ss []string) []Criterion {
	if len(ss) == 0 {
		return nil
	}
	out := make([]Criterion, len(ss))
	for i, s := range ss {
		out[i] = ParseCriterion(s)
	}
	return out
}

func (c Criterion) String() string {
	if c.Negated {
		return NegateMarker + c.Pattern
	}
	return c.Pattern
}
