package types

import (
	"fmt"
	"strings"
)

// Target selects which entry types a Location yields
type Target int

const (
	// TargetFiles yields files and symlinks
	TargetFiles Target = iota
	TargetDirs
	TargetBoth
)

func (t Target) String() string {
	switch t {
	case TargetDirs:
		return "dirs"
	case TargetBoth:
		return "both"
	default:
		return "files"
	}
}

// MarshalText renders the target name in reports
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTarget parses "files", "dirs" or "both". Empty means files.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "files", "file":
		return TargetFiles, nil
	case "dirs", "dir", "folders":
		return TargetDirs, nil
	case "both":
		return TargetBoth, nil
	default:
		return TargetFiles, fmt.Errorf("unknown location target %q", s)
	}
}

// Accepts reports whether an entry of type ft belongs to the target
func (t Target) Accepts(ft FileType) bool {
	switch t {
	case TargetDirs:
		return ft == Dir
	case TargetBoth:
		return true
	default:
		return ft != Dir
	}
}

// Location is a directory a rule scans. MaxDepth limits recursion; 0 means
// unlimited.
type Location struct {
	Path      string `json:"path"`
	Recursive bool   `json:"recursive"`
	MaxDepth  int    `json:"max_depth,omitempty"`
	Target    Target `json:"target"`
}

func (l Location) String() string {
	if !l.Recursive {
		return fmt.Sprintf("%s (%s)", l.Path, l.Target)
	}
	if l.MaxDepth > 0 {
		return fmt.Sprintf("%s (%s, recursive to depth %d)", l.Path, l.Target, l.MaxDepth)
	}
	return fmt.Sprintf("%s (%s, recursive)", l.Path, l.Target)
}
