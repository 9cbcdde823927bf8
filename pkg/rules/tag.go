package rules

import (
	"slices"
	"strings"
)

// Tag labels a rule. Always and Never are reserved; any other name is custom.
type Tag string

const (
	Always Tag = "always"
	Never  Tag = "never"
)

// ParseTag lowers and trims a tag name
func ParseTag(s string) Tag {
	return Tag(strings.ToLower(strings.TrimSpace(s)))
}

// Custom returns a user-defined tag
func Custom(name string) Tag {
	return ParseTag(name)
}

// IsCustom reports whether t is neither Always nor Never
func (t Tag) IsCustom() bool {
	return t != Always && t != Never
}

func (t Tag) String() string {
	return string(t)
}

// Tags is the tag set of a rule
type Tags []Tag

// ParseTags parses every name and drops blanks
func ParseTags(names []string) Tags {
	var out Tags
	for _, n := range names {
		if t := ParseTag(n); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether t is in the set
func (ts Tags) Contains(t Tag) bool {
	return slices.Contains(ts, t)
}

// Intersects reports whether the sets share a tag
func (ts Tags) Intersects(other Tags) bool {
	for _, t := range other {
		if ts.Contains(t) {
			return true
		}
	}
	return false
}

// Strings returns the tag names
func (ts Tags) Strings() []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
