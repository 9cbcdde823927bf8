package rules

import (
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// Builder assembles a Rule in code. Rules are enabled unless Disabled is
// called.
type Builder struct {
	rule Rule
}

// NewBuilder starts a rule with the given name
func NewBuilder(name string) *Builder {
	return &Builder{rule: Rule{Name: name, Enabled: true}}
}

// Disabled marks the rule as disabled
func (b *Builder) Disabled() *Builder {
	b.rule.Enabled = false
	return b
}

// Tags adds tags by name
func (b *Builder) Tags(names ...string) *Builder {
	b.rule.Tags = append(b.rule.Tags, ParseTags(names)...)
	return b
}

// Location adds a non-recursive location yielding files
func (b *Builder) Location(path string) *Builder {
	return b.LocationWith(types.Location{Path: path})
}

// LocationWith adds a fully specified location
func (b *Builder) LocationWith(loc types.Location) *Builder {
	b.rule.Locations = append(b.rule.Locations, loc)
	return b
}

// Group adds a filter group with include polarity
func (b *Builder) Group(match Quantifier, preds ...filters.Predicate) *Builder {
	return b.GroupWith(FilterGroup{Filters: preds, Match: match})
}

// GroupWith adds a fully specified filter group
func (b *Builder) GroupWith(g FilterGroup) *Builder {
	b.rule.Groups = append(b.rule.Groups, g)
	return b
}

// Action appends an action
func (b *Builder) Action(kind ActionKind, params map[string]any) *Builder {
	b.rule.Actions = append(b.rule.Actions, Action{Kind: kind, Params: params})
	return b
}

// Build validates and returns the rule
func (b *Builder) Build() (Rule, error) {
	if err := b.rule.Validate(); err != nil {
		return Rule{}, err
	}
	return b.rule, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() Rule {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
