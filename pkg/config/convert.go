package config

import (
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/paths"
	"github.com/organize-rs/organize-sub000/pkg/rules"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// ToRules converts every rule of the file, stopping at the first error
func (f *File) ToRules() ([]rules.Rule, error) {
	out := make([]rules.Rule, 0, len(f.Rules))
	for i, spec := range f.Rules {
		r, err := spec.ToRule()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "rule %d (%s)", i+1, spec.Name).
				WithDetail("rule", spec.Name).
				WithDetail("index", i+1)
		}
		out = append(out, r)
	}
	return out, nil
}

// ToRule parses kinds, ranges and patterns and validates the result
func (s RuleSpec) ToRule() (rules.Rule, error) {
	r := rules.Rule{
		Name:    s.Name,
		Enabled: s.Enabled == nil || *s.Enabled,
		Tags:    rules.ParseTags(s.Tags),
	}

	for i, ls := range s.Locations {
		loc, err := ls.toLocation()
		if err != nil {
			return rules.Rule{}, errors.Wrapf(err, errors.ErrConfigInvalid, "location %d", i+1)
		}
		r.Locations = append(r.Locations, loc)
	}

	for i, gs := range s.FilterGroups {
		g, err := gs.toGroup()
		if err != nil {
			return rules.Rule{}, errors.Wrapf(err, errors.ErrConfigInvalid, "filter group %d", i+1)
		}
		r.Groups = append(r.Groups, g)
	}

	for i, as := range s.Actions {
		kind, err := rules.ParseActionKind(as.Action)
		if err != nil {
			return rules.Rule{}, errors.Wrapf(err, errors.ErrConfigInvalid, "action %d", i+1)
		}
		r.Actions = append(r.Actions, rules.Action{Kind: kind, Params: as.Params})
	}

	if err := r.Validate(); err != nil {
		return rules.Rule{}, err
	}
	return r, nil
}

func (ls LocationSpec) toLocation() (types.Location, error) {
	if ls.Path == "" {
		return types.Location{}, errors.New(errors.ErrConfigInvalid, "location path cannot be empty")
	}
	path, err := paths.NormalizePath(ls.Path)
	if err != nil {
		return types.Location{}, err
	}
	target, err := types.ParseTarget(ls.Target)
	if err != nil {
		return types.Location{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid target")
	}
	return types.Location{
		Path:      path,
		Recursive: ls.Recursive,
		MaxDepth:  ls.MaxDepth,
		Target:    target,
	}, nil
}

func (gs GroupSpec) toGroup() (rules.FilterGroup, error) {
	match, err := rules.ParseQuantifier(gs.Match)
	if err != nil {
		return rules.FilterGroup{}, err
	}
	results, err := rules.ParsePolarity(gs.Results)
	if err != nil {
		return rules.FilterGroup{}, err
	}

	g := rules.FilterGroup{Match: match, Results: results}
	for i, fs := range gs.Filters {
		p, err := filters.Build(fs)
		if err != nil {
			return rules.FilterGroup{}, errors.Wrapf(err, errors.ErrConfigInvalid, "filter %d (%s)", i+1, fs.Filter)
		}
		g.Filters = append(g.Filters, p)
	}
	return g, nil
}
