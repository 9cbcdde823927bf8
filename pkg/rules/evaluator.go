package rules

import (
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// Evaluator admits entries against a rule's groups. The groups are
// classified once; evaluation keeps no state between calls.
type Evaluator struct {
	ignore []FilterGroup
	all    []FilterGroup
	any    []FilterGroup
}

// NewEvaluator classifies groups by quantifier
func NewEvaluator(groups []FilterGroup) *Evaluator {
	ev := &Evaluator{}
	for _, g := range groups {
		switch g.Match {
		case None:
			ev.ignore = append(ev.ignore, g)
		case Any:
			ev.any = append(ev.any, g)
		default:
			ev.all = append(ev.all, g)
		}
	}
	return ev
}

// Buckets returns the number of ignore, all and any groups
func (ev *Evaluator) Buckets() (ignore, all, anyOf int) {
	return len(ev.ignore), len(ev.all), len(ev.any)
}

// Admit runs the three admission stages over entries, preserving order
func (ev *Evaluator) Admit(entries []types.Entry, env filters.Env) ([]types.Entry, error) {
	// 1. drop entries any ignore group holds for
	survivors, err := keep(entries, func(e types.Entry) (bool, error) {
		hit, err := anyHolds(ev.ignore, e, env)
		return !hit, err
	})
	if err != nil {
		return nil, err
	}

	// 2. every all group must hold
	survivors, err = keep(survivors, func(e types.Entry) (bool, error) {
		return allHold(ev.all, e, env)
	})
	if err != nil {
		return nil, err
	}

	// 3. at least one any group must hold
	if len(ev.any) == 0 {
		return survivors, nil
	}
	return keep(survivors, func(e types.Entry) (bool, error) {
		return anyHolds(ev.any, e, env)
	})
}

// Matches applies the three stages to a single entry
func (ev *Evaluator) Matches(e types.Entry, env filters.Env) (bool, error) {
	if hit, err := anyHolds(ev.ignore, e, env); err != nil || hit {
		return false, err
	}
	if ok, err := allHold(ev.all, e, env); err != nil || !ok {
		return false, err
	}
	if len(ev.any) == 0 {
		return true, nil
	}
	return anyHolds(ev.any, e, env)
}

func keep(entries []types.Entry, pred func(types.Entry) (bool, error)) ([]types.Entry, error) {
	out := make([]types.Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := pred(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func anyHolds(groups []FilterGroup, e types.Entry, env filters.Env) (bool, error) {
	for _, g := range groups {
		ok, err := g.Evaluate(e, env)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func allHold(groups []FilterGroup, e types.Entry, env filters.Env) (bool, error) {
	for _, g := range groups {
		ok, err := g.Evaluate(e, env)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
