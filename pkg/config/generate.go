package config

import (
	"bytes"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a rule file syntax
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts yaml, yml and toml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown rule file format %q", s)
	}
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	return "." + string(f)
}

// SampleFile returns the rules written by genconfig
func SampleFile() File {
	enabled := true
	return File{Rules: []RuleSpec{
		{
			Name:      "large pdfs in downloads",
			Enabled:   &enabled,
			Tags:      []string{"documents"},
			Locations: []LocationSpec{{Path: "~/Downloads"}},
			FilterGroups: []GroupSpec{{
				Match: "all",
				Filters: []filters.Spec{
					{Filter: "extension", Exts: []string{"pdf"}},
					{Filter: "size", Range: "1MB.."},
				},
			}},
			Actions: []ActionSpec{{Action: "move", Params: map[string]any{"to": "~/Documents/PDFs/"}}},
		},
		{
			Name: "stale screenshots",
			Tags: []string{"cleanup"},
			Locations: []LocationSpec{
				{Path: "~/Desktop", Recursive: true, MaxDepth: 2, Target: "files"},
			},
			FilterGroups: []GroupSpec{
				{
					Match: "any",
					Filters: []filters.Spec{
						{Filter: "name", StartsWith: []string{"Screenshot", "Screen Shot"}, Contains: []string{"#!keep"}, CaseInsensitive: true},
					},
				},
				{
					Match:   "all",
					Filters: []filters.Spec{{Filter: "last_modified", Range: "30d.."}},
				},
				{
					Match:   "none",
					Filters: []filters.Spec{{Filter: "ignore_path", InPath: []string{"archive"}}},
				},
			},
			Actions: []ActionSpec{{Action: "trash"}},
		},
		{
			Name:      "empty folders",
			Tags:      []string{"cleanup", "never"},
			Locations: []LocationSpec{{Path: "~/Downloads", Recursive: true, Target: "dirs"}},
			FilterGroups: []GroupSpec{{
				Filters: []filters.Spec{{Filter: "empty"}},
			}},
			Actions: []ActionSpec{{Action: "delete"}},
		},
	}}
}

// sampleDocument mirrors File with actions flattened to plain maps, which
// both encoders can write
type sampleDocument struct {
	Rules []sampleRule `yaml:"rules" toml:"rules"`
}

type sampleRule struct {
	Name         string           `yaml:"name" toml:"name"`
	Enabled      *bool            `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Tags         []string         `yaml:"tags,omitempty" toml:"tags,omitempty"`
	Locations    []LocationSpec   `yaml:"locations" toml:"locations"`
	FilterGroups []GroupSpec      `yaml:"filter_groups,omitempty" toml:"filter_groups,omitempty"`
	Actions      []map[string]any `yaml:"actions,omitempty" toml:"actions,omitempty"`
}

func document(f File) sampleDocument {
	doc := sampleDocument{Rules: make([]sampleRule, len(f.Rules))}
	for i, r := range f.Rules {
		actions := make([]map[string]any, len(r.Actions))
		for j, a := range r.Actions {
			actions[j] = a.toMap()
		}
		doc.Rules[i] = sampleRule{
			Name:         r.Name,
			Enabled:      r.Enabled,
			Tags:         r.Tags,
			Locations:    r.Locations,
			FilterGroups: r.FilterGroups,
			Actions:      actions,
		}
	}
	return doc
}

const sampleHeader = `organize rule file.
Ranges use the forms "1KB..2MB", "1d.." and "..7d".
A name criterion starting with "#!" is a negation.
Rules tagged "never" do not run.
`

// GenerateSample renders the sample rules in the given format
func GenerateSample(format Format) ([]byte, error) {
	return Generate(SampleFile(), format)
}

// Generate renders f as a rule file, prefixed with a comment header
func Generate(f File, format Format) ([]byte, error) {
	doc := document(f)

	var buf bytes.Buffer
	for _, line := range strings.Split(strings.TrimSuffix(sampleHeader, "\n"), "\n") {
		buf.WriteString("# " + line + "\n")
	}
	buf.WriteString("\n")

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown rule file format %q", format)
	}
	return buf.Bytes(), nil
}
