package testutil

import (
	"testing"

	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/stretchr/testify/assert"
)

// EntryNames returns the base names of entries in order
func EntryNames(entries []types.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// EntryPaths returns the paths of entries in order
func EntryPaths(entries []types.Entry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

// AssertEntryNames checks the names of entries, in order
func AssertEntryNames(t *testing.T, entries []types.Entry, want ...string) bool {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	return assert.Equal(t, want, EntryNames(entries))
}

// AssertSameEntryNames checks the names of entries, ignoring order
func AssertSameEntryNames(t *testing.T, entries []types.Entry, want ...string) bool {
	t.Helper()
	return assert.ElementsMatch(t, want, EntryNames(entries))
}
