package runner

import "slices"

// Conflict is a path claimed by more than one rule
type Conflict struct {
	Path  string
	Rules []string
}

// Conflicts indexes the rules that claimed each path, in claim order
type Conflicts struct {
	claims map[string][]string
	order  []string
}

// NewConflicts creates an empty index
func NewConflicts() *Conflicts {
	return &Conflicts{claims: make(map[string][]string)}
}

// Claim records that rule admitted path. Repeated claims by the same rule
// count once.
func (c *Conflicts) Claim(path, rule string) {
	owners, ok := c.claims[path]
	if !ok {
		c.order = append(c.order, path)
	}
	if slices.Contains(owners, rule) {
		return
	}
	c.claims[path] = append(owners, rule)
}

// Claimants returns the rules that claimed path
func (c *Conflicts) Claimants(path string) []string {
	return slices.Clone(c.claims[path])
}

// Len returns the number of claimed paths
func (c *Conflicts) Len() int {
	return len(c.order)
}

// Conflicting returns the paths with two or more claimants, in first-claim
// order
func (c *Conflicts) Conflicting() []Conflict {
	var out []Conflict
	for _, path := range c.order {
		if owners := c.claims[path]; len(owners) > 1 {
			out = append(out, Conflict{Path: path, Rules: slices.Clone(owners)})
		}
	}
	return out
}
