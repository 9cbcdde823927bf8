package rules

import (
	"fmt"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// Quantifier says how many predicates of a group must hold
type Quantifier int

const (
	All Quantifier = iota
	Any
	None
)

func (q Quantifier) String() string {
	switch q {
	case Any:
		return "any"
	case None:
		return "none"
	default:
		return "all"
	}
}

// MarshalText renders the quantifier by its config name
func (q Quantifier) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// ParseQuantifier parses "all", "any" or "none". Empty means all.
func ParseQuantifier(s string) (Quantifier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "any":
		return Any, nil
	case "none":
		return None, nil
	default:
		return All, errors.Newf(errors.ErrInvalidInput, "unknown match %q, expected all, any or none", s)
	}
}

// Polarity is the include or exclude marker of a group
type Polarity int

const (
	Include Polarity = iota
	Exclude
)

func (p Polarity) String() string {
	if p == Exclude {
		return "exclude"
	}
	return "include"
}

// MarshalText renders the polarity by its config name
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePolarity parses "include" or "exclude". Empty means include.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "include":
		return Include, nil
	case "exclude":
		return Exclude, nil
	default:
		return Include, errors.Newf(errors.ErrInvalidInput, "unknown results %q, expected include or exclude", s)
	}
}

// FilterGroup is an ordered set of predicates reduced by a quantifier
type FilterGroup struct {
	Filters []filters.Predicate
	Match   Quantifier
	// Results is carried for reporting; evaluation ignores it
	Results Polarity
}

// Partition evaluates every predicate and splits them by outcome
func (g FilterGroup) Partition(e types.Entry, env filters.Env) (matched, notMatched []filters.Predicate, err error) {
	for _, p := range g.Filters {
		ok, err := filters.Evaluate(p, e, env)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			matched = append(matched, p)
		} else {
			notMatched = append(notMatched, p)
		}
	}
	return matched, notMatched, nil
}

// Evaluate reduces the group to one boolean for e
func (g FilterGroup) Evaluate(e types.Entry, env filters.Env) (bool, error) {
	matched, notMatched, err := g.Partition(e, env)
	if err != nil {
		return false, err
	}
	return Reduce(g.Match, len(matched), len(notMatched)), nil
}

// Reduce applies the quantifier table to partition sizes
func Reduce(q Quantifier, matched, notMatched int) bool {
	switch q {
	case Any:
		return matched > 0
	case None:
		return matched == 0
	default:
		return notMatched == 0
	}
}

func (g FilterGroup) String() string {
	parts := make([]string, len(g.Filters))
	for i, p := range g.Filters {
		parts[i] = filters.Describe(p)
	}
	return fmt.Sprintf("%s[%s] (%s)", g.Match, strings.Join(parts, "; "), g.Results)
}
