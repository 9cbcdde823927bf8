package rules

import (
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// Rule is a named set of locations, filter groups and actions.
// Rules are built at load time and not changed afterwards.
type Rule struct {
	Name      string
	Enabled   bool
	Tags      Tags
	Locations []types.Location
	Groups    []FilterGroup
	Actions   []Action
}

// Validate checks the fields every rule needs
func (r Rule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New(errors.ErrConfigInvalid, "rule name cannot be empty")
	}
	if len(r.Locations) == 0 {
		return errors.Newf(errors.ErrConfigInvalid, "rule '%s' has no locations", r.Name).
			WithDetail("rule", r.Name)
	}
	for i, loc := range r.Locations {
		if strings.TrimSpace(loc.Path) == "" {
			return errors.Newf(errors.ErrConfigInvalid, "rule '%s' location %d has an empty path", r.Name, i+1).
				WithDetail("rule", r.Name)
		}
		if loc.MaxDepth < 0 {
			return errors.Newf(errors.ErrConfigInvalid, "rule '%s' location %d has a negative max_depth", r.Name, i+1).
				WithDetail("rule", r.Name)
		}
	}
	for i, g := range r.Groups {
		if len(g.Filters) == 0 {
			return errors.Newf(errors.ErrConfigInvalid, "rule '%s' filter group %d has no filters", r.Name, i+1).
				WithDetail("rule", r.Name)
		}
	}
	return nil
}

// SkipReason explains why the rule never runs, or returns "" when it can
func (r Rule) SkipReason() string {
	switch {
	case !r.Enabled:
		return "disabled"
	case r.Tags.Contains(Never):
		return "tagged never"
	default:
		return ""
	}
}

// Unsupported lists the predicates of this rule that cannot be evaluated
func (r Rule) Unsupported() []filters.Predicate {
	var out []filters.Predicate
	for _, g := range r.Groups {
		for _, p := range g.Filters {
			if !filters.Supported(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Engine couples a rule with its classified evaluator
type Engine struct {
	rule Rule
	eval *Evaluator
}

// NewEngine classifies the rule's groups once
func NewEngine(rule Rule) *Engine {
	return &Engine{rule: rule, eval: NewEvaluator(rule.Groups)}
}

// Rule returns the rule this engine evaluates
func (en *Engine) Rule() Rule {
	return en.rule
}

// Filter returns the entries the rule admits, in input order
func (en *Engine) Filter(entries []types.Entry, env filters.Env) ([]types.Entry, error) {
	admitted, err := en.eval.Admit(entries, env)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "rule '%s'", en.rule.Name).
			WithDetail("rule", en.rule.Name)
	}
	return admitted, nil
}
