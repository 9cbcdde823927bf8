package display

import (
	"fmt"
	"io"

	"github.com/organize-rs/organize-sub000/pkg/runner"
	"github.com/pterm/pterm"
)

var terminalPalette = palette{
	title:    func(s string) string { return TitleStyle.Render(s) },
	rule:     func(s string) string { return RuleStyle.Render(s) },
	action:   func(s string) string { return ActionStyle.Render(s) },
	path:     func(s string) string { return PathStyle.Render(s) },
	muted:    func(s string) string { return MutedStyle.Render(s) },
	match:    MatchIndicator,
	skipped:  SkippedIndicator,
	conflict: ConflictIndicator,
	entry:    EntryIndicator,
}

// TerminalRenderer writes styled reports for color terminals
type TerminalRenderer struct {
	output io.Writer
}

// NewTerminalRenderer creates a rich terminal renderer
func NewTerminalRenderer(output io.Writer) *TerminalRenderer {
	return &TerminalRenderer{output: output}
}

func (r *TerminalRenderer) RenderReport(report runner.Report) error {
	v := NewReportView(report)
	if _, err := io.WriteString(r.output, layoutReport(v, terminalPalette)); err != nil {
		return err
	}
	if len(v.Conflicts) > 0 {
		msg := fmt.Sprintf("%d %s claimed by more than one rule", len(v.Conflicts), plural(len(v.Conflicts), "path", "paths"))
		_, err := fmt.Fprint(r.output, "\n"+pterm.Warning.Sprintln(msg))
		return err
	}
	return nil
}

func (r *TerminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprint(r.output, pterm.Error.Sprintln(err.Error()))
	return werr
}

func (r *TerminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprint(r.output, pterm.Info.Sprintln(msg))
	return err
}
