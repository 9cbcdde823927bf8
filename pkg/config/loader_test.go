package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/ranges"
	"github.com/organize-rs/organize-sub000/pkg/rules"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const pdfRulesYAML = `
rules:
  - name: pdfs
    tags: [Docs]
    locations:
      - /tmp/x
      - path: /tmp/y
        recursive: true
        max_depth: 2
        target: both
    filter_groups:
      - match: all
        filters:
          - filter: extension
            exts: [pdf]
          - filter: size
            range: 1KB..
      - match: none
        results: exclude
        filters:
          - filter: ignore_name
            in_name: "tmp,bak"
    actions:
      - action: move
        to: /tmp/docs
        conflict: skip
      - echo
`

func TestLoadRuleFile_YAML(t *testing.T) {
	path := writeFile(t, "rules.yaml", pdfRulesYAML)

	loaded, err := LoadRuleFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	r := loaded[0]
	assert.Equal(t, "pdfs", r.Name)
	assert.True(t, r.Enabled)
	assert.Equal(t, rules.Tags{"docs"}, r.Tags)

	assert.Equal(t, []types.Location{
		{Path: "/tmp/x"},
		{Path: "/tmp/y", Recursive: true, MaxDepth: 2, Target: types.TargetBoth},
	}, r.Locations)

	require.Len(t, r.Groups, 2)
	assert.Equal(t, rules.All, r.Groups[0].Match)
	assert.Equal(t, []filters.Predicate{
		filters.Extension{Exts: []string{"pdf"}},
		filters.Size{Range: &ranges.Range{Low: 1000, High: ranges.SizeMax}},
	}, r.Groups[0].Filters)
	assert.Equal(t, rules.None, r.Groups[1].Match)
	assert.Equal(t, rules.Exclude, r.Groups[1].Results)
	assert.Equal(t, []filters.Predicate{filters.IgnoreName{Patterns: []string{"tmp", "bak"}}}, r.Groups[1].Filters)

	require.Len(t, r.Actions, 2)
	assert.Equal(t, rules.ActionMove, r.Actions[0].Kind)
	assert.Equal(t, map[string]any{"to": "/tmp/docs", "conflict": "skip"}, r.Actions[0].Params)
	assert.Equal(t, rules.ActionEcho, r.Actions[1].Kind)
	assert.Empty(t, r.Actions[1].Params)
}

func TestLoadRuleFile_TOML(t *testing.T) {
	path := writeFile(t, "rules.toml", `
[[rules]]
name = "old logs"
enabled = false
locations = ["/var/tmp"]

[[rules.filter_groups]]
match = "any"

[[rules.filter_groups.filters]]
filter = "last_modified"
range = "..7d"

[[rules.filter_groups.filters]]
filter = "name"
ends_with = ["log"]
case_insensitive = true

[[rules.actions]]
action = "trash"
`)

	loaded, err := LoadRuleFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	r := loaded[0]
	assert.Equal(t, "old logs", r.Name)
	assert.False(t, r.Enabled)
	assert.Equal(t, "disabled", r.SkipReason())
	assert.Equal(t, []types.Location{{Path: "/var/tmp"}}, r.Locations)
	require.Len(t, r.Groups, 1)
	assert.Equal(t, rules.Any, r.Groups[0].Match)
	assert.Equal(t, filters.LastModified{Range: &ranges.Range{Low: ranges.TimeMin, High: 7 * 86400}}, r.Groups[0].Filters[0])
	assert.Equal(t, filters.NewName(nil, nil, []string{"log"}, true), r.Groups[0].Filters[1])
	assert.Equal(t, rules.ActionTrash, r.Actions[0].Kind)
}

func TestLoadRuleFile_SingleLocationShorthand(t *testing.T) {
	path := writeFile(t, "rules.yml", `
rules:
  - name: single
    locations: /tmp/x
`)

	loaded, err := LoadRuleFile(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Location{{Path: "/tmp/x"}}, loaded[0].Locations)
	assert.Empty(t, loaded[0].Groups)
}

func TestLoadRuleFile_WordLists(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
rules:
  - name: words
    locations: /tmp/x
    filter_groups:
      - filters:
          - filter: ignore_name
            in_name: "tmp, bak ,"
          - filter: ignore_path
            in_path: [cache, build]
          - filter: name
            contains: "a,b"
`)

	loaded, err := LoadRuleFile(path)
	require.NoError(t, err)
	fs := loaded[0].Groups[0].Filters
	assert.Equal(t, filters.IgnoreName{Patterns: []string{"tmp", "bak"}}, fs[0])
	assert.Equal(t, filters.IgnorePath{Patterns: []string{"cache", "build"}}, fs[1])
	assert.Equal(t, filters.NewName(nil, []string{"a,b"}, nil, false), fs[2])

	ok, err := filters.Evaluate(fs[0], types.Entry{Path: "/tmp/x/notes.bak", Name: "notes.bak", Type: types.File}, filters.Env{})
	require.NoError(t, err)
	assert.False(t, ok, "notes.bak contains an ignored word")
}

func TestLoadRuleFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
		inner   errors.ErrorCode
	}{
		{
			name: "unknown extension",
			file: "rules.json", content: `{}`,
			code: errors.ErrConfigLoad,
		},
		{
			name: "malformed yaml",
			file: "rules.yaml", content: "rules: [\n",
			code: errors.ErrConfigParse,
		},
		{
			name: "unknown filter key",
			file: "rules.yaml",
			content: `
rules:
  - name: r
    locations: [/tmp]
    filter_groups:
      - filters:
          - filter: size
            rnage: 1KB..
`,
			code: errors.ErrConfigParse,
		},
		{
			name: "bad range",
			file: "rules.yaml",
			content: `
rules:
  - name: r
    locations: [/tmp]
    filter_groups:
      - filters:
          - filter: created
            range: 1w..7d
`,
			code:  errors.ErrConfigInvalid,
			inner: errors.ErrRangeBounds,
		},
		{
			name: "unknown unit",
			file: "rules.yaml",
			content: `
rules:
  - name: r
    locations: [/tmp]
    filter_groups:
      - filters:
          - filter: size
            range: 1XB..
`,
			code:  errors.ErrConfigInvalid,
			inner: errors.ErrUnitUnknown,
		},
		{
			name: "unknown quantifier",
			file: "rules.yaml",
			content: `
rules:
  - name: r
    locations: [/tmp]
    filter_groups:
      - match: most
        filters:
          - filter: empty
`,
			code:  errors.ErrConfigInvalid,
			inner: errors.ErrInvalidInput,
		},
		{
			name: "unknown action",
			file: "rules.yaml",
			content: `
rules:
  - name: r
    locations: [/tmp]
    actions: [shred]
`,
			code:  errors.ErrConfigInvalid,
			inner: errors.ErrInvalidInput,
		},
		{
			name: "no locations",
			file: "rules.yaml",
			content: `
rules:
  - name: r
`,
			code: errors.ErrConfigInvalid,
		},
		{
			name: "bad target",
			file: "rules.yaml",
			content: `
rules:
  - name: r
    locations:
      - path: /tmp
        target: sockets
`,
			code: errors.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadRuleFile(path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "got %v", err)
			if tt.inner != "" {
				assert.True(t, errors.IsErrorCode(err, tt.inner), "got %v", err)
			}
		})
	}
}

func TestLoadRuleFile_Missing(t *testing.T) {
	_, err := LoadRuleFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadRules_Positions(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
rules:
  - name: fine
    locations: [/tmp]
  - name: broken
    locations: [/tmp]
    filter_groups:
      - filters:
          - filter: empty
          - filter: size
            range: nonsense
`)

	_, err := LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 2 (broken)")
	assert.Contains(t, err.Error(), "filter group 1")
	assert.Contains(t, err.Error(), "filter 2 (size)")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRangeParse))
	assert.Equal(t, "broken", errors.GetErrorDetails(err)["rule"])
}

func TestLoadRules_MultipleFiles(t *testing.T) {
	a := writeFile(t, "a.yaml", "rules:\n  - name: one\n    locations: [/tmp]\n")
	b := writeFile(t, "b.toml", "[[rules]]\nname = \"two\"\nlocations = [\"/tmp\"]\n")

	loaded, err := LoadRules(a, b)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "one", loaded[0].Name)
	assert.Equal(t, "two", loaded[1].Name)

	dup := writeFile(t, "dup.yaml", "rules:\n  - name: one\n    locations: [/var]\n")
	_, err = LoadRules(a, dup)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestLoadRuleFile_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeFile(t, "rules.yaml", "rules:\n  - name: home\n    locations: [~/Downloads]\n")
	loaded, err := LoadRuleFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads"), loaded[0].Locations[0].Path)
}
