package display

import (
	"encoding/json"
	"io"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/runner"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a renderer writing indented JSON documents
func NewJSONRenderer(output io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

func (r *JSONRenderer) RenderReport(report runner.Report) error {
	return r.encoder.Encode(NewReportView(report))
}

// RenderError includes the error code when err carries one
func (r *JSONRenderer) RenderError(err error) error {
	obj := map[string]string{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj["code"] = string(code)
	}
	return r.encoder.Encode(obj)
}

func (r *JSONRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
