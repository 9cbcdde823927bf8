package display

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/rules"
	"github.com/organize-rs/organize-sub000/pkg/runner"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var started = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleReport() runner.Report {
	large := rules.Rule{
		Name:    "large pdfs",
		Enabled: true,
		Tags:    rules.Tags{rules.Custom("backup")},
		Actions: []rules.Action{{Kind: rules.ActionMove, Params: map[string]any{"to": "/archive"}}},
	}
	empty := rules.Rule{Name: "empty dirs", Enabled: true}

	return runner.Report{
		ID:       "3f1c2a9e-0000-4000-8000-000000000001",
		Started:  started,
		Finished: started.Add(1500 * time.Millisecond),
		Matches: []runner.Match{
			{Rule: large, Entries: []types.Entry{
				{Path: "/tmp/x/a.pdf", Name: "a.pdf", Type: types.File, Size: 2000, Modified: started.Add(-time.Hour)},
			}},
			{Rule: empty},
		},
		Skipped:   []runner.Skipped{{Rule: "old", Reason: "disabled"}},
		Conflicts: []runner.Conflict{{Path: "/tmp/x/a.pdf", Rules: []string{"large pdfs", "pdfs"}}},
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		name     string
		wantErr  bool
	}{
		{input: "", expected: FormatAuto, name: "auto"},
		{input: "auto", expected: FormatAuto, name: "auto"},
		{input: "terminal", expected: FormatTerminal, name: "term"},
		{input: "TERM", expected: FormatTerminal, name: "term"},
		{input: "plain", expected: FormatText, name: "text"},
		{input: "json", expected: FormatJSON, name: "json"},
		{input: " xml ", expected: FormatXML, name: "xml"},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
			assert.Equal(t, tt.name, f.String())
		})
	}

	assert.Equal(t, "unknown", Format(999).String())
	for _, name := range Formats() {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r, "non-file writers get plain text")

	r, err = NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)
	assert.IsType(t, &TerminalRenderer{}, r)

	r, err = NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	r, err = NewRenderer(FormatXML, &buf)
	require.NoError(t, err)
	assert.IsType(t, &XMLRenderer{}, r)

	_, err = NewRenderer(Format(42), &buf)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNewReportView(t *testing.T) {
	v := NewReportView(sampleReport())

	assert.Equal(t, 1, v.Total)
	assert.Equal(t, 1500*time.Millisecond, v.Duration)
	require.Len(t, v.Matches, 2)
	assert.Equal(t, []string{"backup"}, v.Matches[0].Tags)
	assert.Equal(t, []string{"move(to=/archive)"}, v.Matches[0].Actions)
	assert.NotNil(t, v.Matches[1].Entries)
	assert.NotNil(t, v.Matches[1].Actions)
	assert.Equal(t, []SkippedView{{Rule: "old", Reason: "disabled"}}, v.Skipped)
	assert.Equal(t, []ConflictView{{Path: "/tmp/x/a.pdf", Rules: []string{"large pdfs", "pdfs"}}}, v.Conflicts)

	empty := NewReportView(runner.Report{})
	assert.NotNil(t, empty.Matches)
	assert.NotNil(t, empty.Skipped)
	assert.NotNil(t, empty.Conflicts)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	require.NoError(t, r.RenderReport(sampleReport()))
	out := buf.String()

	for _, want := range []string{
		"Run 3f1c2a9e-0000-4000-8000-000000000001",
		"1 entry matched in 1.5s",
		"+ large pdfs [backup]",
		"actions: move(to=/archive)",
		"* /tmp/x/a.pdf (file, 2kB)",
		"+ empty dirs",
		"no entries",
		"Skipped",
		"- old: disabled",
		"Conflicts",
		"! /tmp/x/a.pdf: large pdfs, pdfs",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "text output carries no escape codes")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrConfigLoad, "boom")))
	assert.Equal(t, "Error: [CONFIG_LOAD] boom\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.Equal(t, "done\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	require.NoError(t, r.RenderReport(sampleReport()))
	out := buf.String()
	for _, want := range []string{"large pdfs", "move(to=/archive)", "/tmp/x/a.pdf", "disabled", "1 path claimed by more than one rule"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrConfigLoad, "boom")))
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.Contains(t, buf.String(), "done")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	require.NoError(t, r.RenderReport(sampleReport()))

	var decoded struct {
		ID      string `json:"id"`
		Total   int    `json:"total"`
		Matches []struct {
			Rule    string   `json:"rule"`
			Actions []string `json:"actions"`
			Entries []struct {
				Path string `json:"path"`
				Type string `json:"type"`
				Size int64  `json:"size"`
			} `json:"entries"`
		} `json:"matches"`
		Skipped   []SkippedView  `json:"skipped"`
		Conflicts []ConflictView `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "3f1c2a9e-0000-4000-8000-000000000001", decoded.ID)
	assert.Equal(t, 1, decoded.Total)
	require.Len(t, decoded.Matches, 2)
	assert.Equal(t, "large pdfs", decoded.Matches[0].Rule)
	assert.Equal(t, []string{"move(to=/archive)"}, decoded.Matches[0].Actions)
	require.Len(t, decoded.Matches[0].Entries, 1)
	assert.Equal(t, "file", decoded.Matches[0].Entries[0].Type)
	assert.Equal(t, int64(2000), decoded.Matches[0].Entries[0].Size)
	assert.Len(t, decoded.Skipped, 1)
	assert.Len(t, decoded.Conflicts, 1)
	assert.Contains(t, buf.String(), `"entries": []`, "empty matches render arrays")
	assert.NotContains(t, buf.String(), `"created"`, "zero timestamps are omitted")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrConfigLoad, "boom")))
	var errObj map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, "CONFIG_LOAD", errObj["code"])
	assert.Equal(t, "[CONFIG_LOAD] boom", errObj["error"])
}

func TestXMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewXMLRenderer(&buf)

	require.NoError(t, r.RenderReport(sampleReport()))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "report", root.Tag)
	assert.Equal(t, "1", root.SelectAttrValue("total", ""))
	assert.Equal(t, "2024-06-01T12:00:00Z", root.SelectAttrValue("started", ""))

	matches := root.SelectElements("match")
	require.Len(t, matches, 2)
	assert.Equal(t, "large pdfs", matches[0].SelectAttrValue("rule", ""))
	assert.Equal(t, "backup", matches[0].SelectElement("tag").Text())
	assert.Equal(t, "move(to=/archive)", matches[0].SelectElement("action").Text())

	entry := matches[0].SelectElement("entry")
	require.NotNil(t, entry)
	assert.Equal(t, "/tmp/x/a.pdf", entry.Text())
	assert.Equal(t, "2000", entry.SelectAttrValue("size", ""))
	assert.Equal(t, "2024-06-01T11:00:00Z", entry.SelectAttrValue("modified", ""))
	assert.Nil(t, entry.SelectAttr("created"))

	skipped := root.FindElement("skipped[@rule='old']")
	require.NotNil(t, skipped)
	assert.Equal(t, "disabled", skipped.SelectAttrValue("reason", ""))

	conflict := root.SelectElement("conflict")
	require.NotNil(t, conflict)
	assert.Len(t, conflict.SelectElements("rule"), 2)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotImplemented, "hash")))
	assert.Contains(t, buf.String(), `<error code="NOT_IMPLEMENTED">`)
}
