package filters

import (
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/ranges"
)

// Predicate is one of the concrete filter types in this package
type Predicate interface {
	Kind() Kind
	sealed()
}

// Extension matches files whose extension equals one of Exts, ignoring case
type Extension struct {
	Exts []string
}

// Name matches the file stem against prefix, substring and suffix criteria
type Name struct {
	StartsWith      []Criterion
	Contains        []Criterion
	EndsWith        []Criterion
	CaseInsensitive bool
}

// Size matches files whose byte size lies in Range
type Size struct {
	Range *ranges.Range
}

// Created matches entries whose age since creation lies in Range
type Created struct {
	Range *ranges.Range
}

// LastModified matches entries whose age since modification lies in Range
type LastModified struct {
	Range *ranges.Range
}

// LastAccessed matches entries whose age since last access lies in Range
type LastAccessed struct {
	Range *ranges.Range
}

// Empty matches zero-byte files and directories without children
type Empty struct{}

// Mimetype matches files whose sniffed media type is one of Types
type Mimetype struct {
	Types []string
}

// IgnoreName matches entries whose name contains none of Patterns
type IgnoreName struct {
	Patterns []string
}

// IgnorePath matches entries whose path contains none of Patterns
type IgnorePath struct {
	Patterns []string
}

// AllItems matches everything once the user has consented
type AllItems struct {
	Consent bool
}

// NoFilter never matches
type NoFilter struct{}

// Unimplemented stands in for schema members that cannot be evaluated
type Unimplemented struct {
	Of Kind
}

func (Extension) Kind() Kind { return KindExtension }
func (Name) Kind() Kind { return KindName }
func (Size) Kind() Kind { return KindSize }
func (Created) Kind() Kind { return KindCreated }
func (LastModified) Kind() Kind { return KindLastModified }
func (LastAccessed) Kind() Kind { return KindLastAccessed }
func (Empty) Kind() Kind { return KindEmpty }
func (Mimetype) Kind() Kind { return KindMimetype }
func (IgnoreName) Kind() Kind { return KindIgnoreName }
func (IgnorePath) Kind() Kind { return KindIgnorePath }
func (AllItems) Kind() Kind { return KindAllItems }
func (NoFilter) Kind() Kind { return KindNoFilter }
func (u Unimplemented) Kind() Kind { return u.Of }

func (Extension) sealed() {}
func (Name) sealed() {}
func (Size) sealed() {}
func (Created) sealed() {}
func (LastModified) sealed() {}
func (LastAccessed) sealed() {}
func (Empty) sealed() {}
func (Mimetype) sealed() {}
func (IgnoreName) sealed() {}
func (IgnorePath) sealed() {}
func (AllItems) sealed() {}
func (NoFilter) sealed() {}
func (Unimplemented) sealed() {}

// NewExtension strips leading dots from exts
func NewExtension(exts ...string) Extension {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext = strings.TrimPrefix(strings.TrimSpace(ext), "."); ext != "" {
			out = append(out, ext)
		}
	}
	return Extension{Exts: out}
}

// NewName parses the "#!" marker of every pattern
func NewName(startsWith, contains, endsWith []string, caseInsensitive bool) Name {
	return Name{
		StartsWith:      ParseCriteria(startsWith),
		Contains:        ParseCriteria(contains),
		EndsWith:        ParseCriteria(endsWith),
		CaseInsensitive: caseInsensitive,
	}
}

// Supported reports whether p can be evaluated
func Supported(p Predicate) bool {
	if p == nil {
		return false
	}
	_, stub := p.(Unimplemented)
	return !stub && p.Kind().Implemented()
}
