package filters

import (
	"fmt"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filesystem"
	"github.com/organize-rs/organize-sub000/pkg/ranges"
	"github.com/organize-rs/organize-sub000/pkg/registry"
)

// Spec is the configuration form of a filter. Filter selects the kind; the
// other fields are read by the kinds that need them.
type Spec struct {
	Filter          string   `koanf:"filter" yaml:"filter" toml:"filter"`
	Range           string   `koanf:"range" yaml:"range,omitempty" toml:"range,omitempty"`
	Exts            []string `koanf:"exts" yaml:"exts,omitempty" toml:"exts,omitempty"`
	StartsWith      []string `koanf:"starts_with" yaml:"starts_with,omitempty" toml:"starts_with,omitempty"`
	Contains        []string `koanf:"contains" yaml:"contains,omitempty" toml:"contains,omitempty"`
	EndsWith        []string `koanf:"ends_with" yaml:"ends_with,omitempty" toml:"ends_with,omitempty"`
	CaseInsensitive bool     `koanf:"case_insensitive" yaml:"case_insensitive,omitempty" toml:"case_insensitive,omitempty"`
	InName          WordList `koanf:"in_name" yaml:"in_name,omitempty" toml:"in_name,omitempty"`
	InPath          WordList `koanf:"in_path" yaml:"in_path,omitempty" toml:"in_path,omitempty"`
	Mime            []string `koanf:"mime" yaml:"mime,omitempty" toml:"mime,omitempty"`
	Consent         bool     `koanf:"i_agree_it_is_dangerous" yaml:"i_agree_it_is_dangerous,omitempty" toml:"i_agree_it_is_dangerous,omitempty"`
}

// WordList holds the substrings of ignore_name and ignore_path. Rule files
// may give it as a list or as one comma separated string.
type WordList []string

// ParseWordList splits s on commas, trimming each word and dropping empty ones
func ParseWordList(s string) WordList {
	words := WordList{}
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Factory builds a predicate from its configuration
type Factory func(Spec) (Predicate, error)

type entry struct {
	kind    Kind
	factory Factory
}

var catalog = registry.New[entry]()

// Build turns a Spec into a Predicate, parsing ranges and patterns up front
func Build(spec Spec) (Predicate, error) {
	if strings.TrimSpace(spec.Filter) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "filter kind is missing")
	}
	ent, err := catalog.Get(spec.Filter)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "unknown filter %q", spec.Filter)
	}
	return ent.factory(spec)
}

// Names returns the schema names of all filters
func Names() []string {
	return catalog.List()
}

func buildRange(spec Spec, domain ranges.Domain) (*ranges.Range, error) {
	if strings.TrimSpace(spec.Range) == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "filter %s requires a range", spec.Filter)
	}
	r, err := ranges.Parse(spec.Range, domain)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func ageOrSize(domain ranges.Domain, wrap func(*ranges.Range) Predicate) Factory {
	return func(s Spec) (Predicate, error) {
		r, err := buildRange(s, domain)
		if err != nil {
			return nil, err
		}
		return wrap(r), nil
	}
}

func buildMimetype(spec Spec) (Predicate, error) {
	if len(spec.Mime) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "filter mimetype requires at least one mime type")
	}
	types := make([]string, 0, len(spec.Mime))
	for _, m := range spec.Mime {
		mt, err := filesystem.MediaType(m)
		if err != nil {
			return nil, err
		}
		types = append(types, mt)
	}
	return Mimetype{Types: types}, nil
}

func init() {
	factories := map[Kind]Factory{
		KindExtension: func(s Spec) (Predicate, error) {
			ext := NewExtension(s.Exts...)
			if len(ext.Exts) == 0 {
				return nil, errors.New(errors.ErrInvalidInput, "filter extension requires at least one extension")
			}
			return ext, nil
		},
		KindName: func(s Spec) (Predicate, error) {
			return NewName(s.StartsWith, s.Contains, s.EndsWith, s.CaseInsensitive), nil
		},
		KindSize:         ageOrSize(ranges.DomainSize, func(r *ranges.Range) Predicate { return Size{Range: r} }),
		KindCreated:      ageOrSize(ranges.DomainTime, func(r *ranges.Range) Predicate { return Created{Range: r} }),
		KindLastModified: ageOrSize(ranges.DomainTime, func(r *ranges.Range) Predicate { return LastModified{Range: r} }),
		KindLastAccessed: ageOrSize(ranges.DomainTime, func(r *ranges.Range) Predicate { return LastAccessed{Range: r} }),

		KindEmpty:    func(Spec) (Predicate, error) { return Empty{}, nil },
		KindMimetype: buildMimetype,
		KindIgnoreName: func(s Spec) (Predicate, error) {
			return IgnoreName{Patterns: []string(s.InName)}, nil
		},
		KindIgnorePath: func(s Spec) (Predicate, error) {
			return IgnorePath{Patterns: []string(s.InPath)}, nil
		},
		KindAllItems: func(s Spec) (Predicate, error) { return AllItems{Consent: s.Consent}, nil },
		KindNoFilter: func(Spec) (Predicate, error) { return NoFilter{}, nil },
	}

	for _, kind := range Kinds() {
		factory, ok := factories[kind]
		if !ok {
			factory = func(Spec) (Predicate, error) { return Unimplemented{Of: kind}, nil }
		}
		registry.MustRegister(catalog, kind.String(), entry{kind: kind, factory: factory}, kindAliases[kind]...)
	}
}

// Describe renders p on one line for reports
func Describe(p Predicate) string {
	switch p := p.(type) {
	case Extension:
		return fmt.Sprintf("extension in [%s]", strings.Join(p.Exts, ", "))
	case Name:
		var parts []string
		for _, l := range []struct {
			label    string
			criteria []Criterion
		}{{"starts_with", p.StartsWith}, {"contains", p.Contains}, {"ends_with", p.EndsWith}} {
			if len(l.criteria) == 0 {
				continue
			}
			patterns := make([]string, len(l.criteria))
			for i, c := range l.criteria {
				patterns[i] = c.String()
			}
			parts = append(parts, fmt.Sprintf("%s [%s]", l.label, strings.Join(patterns, ", ")))
		}
		s := "name " + strings.Join(parts, " ")
		if p.CaseInsensitive {
			s += " (case insensitive)"
		}
		return s
	case Size:
		return describeRange("size", p.Range, ranges.Range.HumanSize)
	case Created:
		return describeRange("created", p.Range, ranges.Range.HumanDuration)
	case LastModified:
		return describeRange("last_modified", p.Range, ranges.Range.HumanDuration)
	case LastAccessed:
		return describeRange("last_accessed", p.Range, ranges.Range.HumanDuration)
	case Empty:
		return "empty"
	case Mimetype:
		return fmt.Sprintf("mimetype in [%s]", strings.Join(p.Types, ", "))
	case IgnoreName:
		return fmt.Sprintf("name contains none of [%s]", strings.Join(p.Patterns, ", "))
	case IgnorePath:
		return fmt.Sprintf("path contains none of [%s]", strings.Join(p.Patterns, ", "))
	case AllItems:
		if p.Consent {
			return "all items"
		}
		return "all items (not agreed, matches nothing)"
	case NoFilter:
		return "no filter"
	case Unimplemented:
		return fmt.Sprintf("%s (not implemented)", p.Of)
	default:
		return "unknown"
	}
}

func describeRange(label string, r *ranges.Range, human func(ranges.Range) string) string {
	if r == nil {
		return label + " (no range)"
	}
	return fmt.Sprintf("%s %s", label, human(*r))
}
