package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"github.com/organize-rs/organize-sub000/pkg/runner"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// palette decorates the pieces of a report layout
type palette struct {
	title    func(string) string
	rule     func(string) string
	action   func(string) string
	path     func(string) string
	muted    func(string) string
	match    string
	skipped  string
	conflict string
	entry    string
}

func plain(s string) string { return s }

var plainPalette = palette{
	title:    plain,
	rule:     plain,
	action:   plain,
	path:     plain,
	muted:    plain,
	match:    "+",
	skipped:  "-",
	conflict: "!",
	entry:    "*",
}

// TextRenderer writes reports as plain text without any styling
type TextRenderer struct {
	output io.Writer
}

// NewTextRenderer creates a plain text renderer
func NewTextRenderer(output io.Writer) *TextRenderer {
	return &TextRenderer{output: output}
}

func (r *TextRenderer) RenderReport(report runner.Report) error {
	_, err := io.WriteString(r.output, layoutReport(NewReportView(report), plainPalette))
	return err
}

func (r *TextRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *TextRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// layoutReport renders the sections shared by the text and terminal
// renderers: matches per rule, then skipped rules, then conflicts
func layoutReport(v ReportView, p palette) string {
	var out strings.Builder

	out.WriteString(p.title(fmt.Sprintf("Run %s", v.ID)) + "\n")
	out.WriteString(p.muted(fmt.Sprintf("%d %s matched in %s",
		v.Total, plural(v.Total, "entry", "entries"), v.Duration.Round(time.Millisecond))) + "\n")

	for _, m := range v.Matches {
		out.WriteString("\n")
		header := fmt.Sprintf("%s %s", p.match, p.rule(m.Rule))
		if len(m.Tags) > 0 {
			header += " " + p.muted("["+strings.Join(m.Tags, ", ")+"]")
		}
		out.WriteString(header + "\n")

		if len(m.Actions) > 0 {
			out.WriteString(Indent(p.muted("actions: ")+p.action(strings.Join(m.Actions, ", ")), 1) + "\n")
		}
		if len(m.Entries) == 0 {
			out.WriteString(Indent(p.muted("no entries"), 1) + "\n")
		}
		for _, e := range m.Entries {
			out.WriteString(Indent(fmt.Sprintf("%s %s %s", p.entry, p.path(e.Path), p.muted(describe(e))), 1) + "\n")
		}
	}

	if len(v.Skipped) > 0 {
		out.WriteString("\n" + p.title("Skipped") + "\n")
		for _, s := range v.Skipped {
			out.WriteString(Indent(fmt.Sprintf("%s %s: %s", p.skipped, s.Rule, p.muted(s.Reason)), 1) + "\n")
		}
	}

	if len(v.Conflicts) > 0 {
		out.WriteString("\n" + p.title("Conflicts") + "\n")
		for _, c := range v.Conflicts {
			out.WriteString(Indent(fmt.Sprintf("%s %s: %s", p.conflict, p.path(c.Path), strings.Join(c.Rules, ", ")), 1) + "\n")
		}
	}

	return out.String()
}

func describe(e types.Entry) string {
	if e.IsDir() {
		return "(" + e.Type.String() + ")"
	}
	return fmt.Sprintf("(%s, %s)", e.Type, units.HumanSize(float64(e.Size)))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
