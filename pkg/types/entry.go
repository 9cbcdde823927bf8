package types

import (
	"path/filepath"
	"strings"
	"time"
)

// FileType is the kind of filesystem item an Entry describes
type FileType int

const (
	File FileType = iota
	Dir
	Symlink
)

func (t FileType) String() string {
	switch t {
	case Dir:
		return "dir"
	case Symlink:
		return "symlink"
	default:
		return "file"
	}
}

// MarshalText renders the type name in reports
func (t FileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Entry is a read-only snapshot of one filesystem item.
// Zero timestamps mean the value was not available.
type Entry struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Type     FileType  `json:"type"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created,omitzero"`
	Modified time.Time `json:"modified,omitzero"`
	Accessed time.Time `json:"accessed,omitzero"`
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Type == Dir
}

// Extension returns the extension without the leading dot.
// A dotfile such as ".bashrc" has no extension.
func (e Entry) Extension() string {
	return strings.TrimPrefix(ext(e.Name), ".")
}

// Stem returns the name without its extension
func (e Entry) Stem() string {
	return strings.TrimSuffix(e.Name, ext(e.Name))
}

func ext(name string) string {
	x := filepath.Ext(name)
	if x == name {
		return ""
	}
	return x
}
