package display

import (
	"io"
	"os"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/runner"
)

// Renderer writes run reports and messages in one output format
type Renderer interface {
	// RenderReport renders the outcome of a run
	RenderReport(report runner.Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved with
// DetectFormat when output is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return NewTerminalRenderer(output), nil
	case FormatText:
		return NewTextRenderer(output), nil
	case FormatJSON:
		return NewJSONRenderer(output), nil
	case FormatXML:
		return NewXMLRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
