package config

import (
	"github.com/organize-rs/organize-sub000/pkg/filters"
)

// File is the decoded form of one rule file
type File struct {
	Rules []RuleSpec `koanf:"rules" yaml:"rules" toml:"rules"`
}

// RuleSpec is one entry of the rules list. Enabled defaults to true when
// absent.
type RuleSpec struct {
	Name         string         `koanf:"name" yaml:"name" toml:"name"`
	Enabled      *bool          `koanf:"enabled" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Tags         []string       `koanf:"tags" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Locations    []LocationSpec `koanf:"locations" yaml:"locations" toml:"locations"`
	FilterGroups []GroupSpec    `koanf:"filter_groups" yaml:"filter_groups,omitempty" toml:"filter_groups,omitempty"`
	Actions      []ActionSpec   `koanf:"actions" yaml:"actions,omitempty" toml:"actions,omitempty"`
}

// LocationSpec is a scan location. A plain string in the file is shorthand
// for a non-recursive location with that path.
type LocationSpec struct {
	Path      string `koanf:"path" yaml:"path" toml:"path"`
	Recursive bool   `koanf:"recursive" yaml:"recursive,omitempty" toml:"recursive,omitempty"`
	MaxDepth  int    `koanf:"max_depth" yaml:"max_depth,omitempty" toml:"max_depth,omitempty"`
	Target    string `koanf:"target" yaml:"target,omitempty" toml:"target,omitempty"`
}

// GroupSpec is a filter group: a quantifier, a polarity and its filters
type GroupSpec struct {
	Match   string         `koanf:"match" yaml:"match,omitempty" toml:"match,omitempty"`
	Results string         `koanf:"results" yaml:"results,omitempty" toml:"results,omitempty"`
	Filters []filters.Spec `koanf:"filters" yaml:"filters" toml:"filters"`
}

// ActionSpec names an action; every other key is kept as a parameter.
// A plain string in the file is shorthand for an action without parameters.
type ActionSpec struct {
	Action string         `koanf:"action"`
	Params map[string]any `koanf:",remain"`
}

// toMap flattens the action back into the file form
func (a ActionSpec) toMap() map[string]any {
	m := make(map[string]any, len(a.Params)+1)
	for k, v := range a.Params {
		m[k] = v
	}
	m["action"] = a.Action
	return m
}
