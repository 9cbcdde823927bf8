package filters

import (
	"github.com/organize-rs/organize-sub000/pkg/errors"
)

// Kind names a predicate in the rule schema
type Kind int

const (
	KindExtension Kind = iota
	KindName
	KindSize
	KindCreated
	KindLastModified
	KindLastAccessed
	KindEmpty
	KindMimetype
	KindIgnoreName
	KindIgnorePath
	KindAllItems
	KindNoFilter
	KindRegex
	KindFileContent
	KindDuplicate
	KindExif
	KindMacOsTags
	KindHash
)

var kindNames = [...]string{
	KindExtension:    "extension",
	KindName:         "name",
	KindSize:         "size",
	KindCreated:      "created",
	KindLastModified: "last_modified",
	KindLastAccessed: "last_accessed",
	KindEmpty:        "empty",
	KindMimetype:     "mimetype",
	KindIgnoreName:   "ignore_name",
	KindIgnorePath:   "ignore_path",
	KindAllItems:     "all_items",
	KindNoFilter:     "no_filter",
	KindRegex:        "regex",
	KindFileContent:  "file_content",
	KindDuplicate:    "duplicate",
	KindExif:         "exif",
	KindMacOsTags:    "mac_os_tags",
	KindHash:         "hash",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText renders the kind by its schema name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Kinds returns every kind in schema order
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// Implemented reports whether predicates of this kind can be evaluated
func (k Kind) Implemented() bool {
	return k <= KindNoFilter
}

// ParseKind resolves a schema name or alias to a Kind
func ParseKind(s string) (Kind, error) {
	f, err := catalog.Get(s)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput, "unknown filter %q", s)
	}
	return f.kind, nil
}

// aliases accepted in rule files besides the schema names
var kindAliases = map[Kind][]string{
	KindLastModified: {"lastmodified", "modified"},
	KindLastAccessed: {"lastaccessed", "accessed"},
	KindMimetype:     {"mime"},
	KindIgnoreName:   {"ignorename"},
	KindIgnorePath:   {"ignorepath"},
	KindAllItems:     {"allitems"},
	KindNoFilter:     {"nofilter"},
	KindFileContent:  {"filecontent"},
	KindMacOsTags:    {"macostags"},
}
