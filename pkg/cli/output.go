package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatYAML is YAML output.
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	case "":
		return FormatText, nil
	default:
		return "", NewConfigError("output.format", fmt.Sprintf("unknown output format %q: must be 'text', 'json', or 'yaml'", s))
	}
}

// Formatter formats command output.
type Formatter interface {
	Format(data interface{}) ([]byte, error)
	FormatTo(w io.Writer, data interface{}) error
}

// TextWriter is implemented by results that render their own text output.
type TextWriter interface {
	WriteText(w io.Writer, styles *Styles) error
}

// TextFormatter formats output as plain text.
type TextFormatter struct {
	Styles *Styles
}

// Format converts data to text format.
func (f *TextFormatter) Format(data interface{}) ([]byte, error) {
	if tw, ok := data.(TextWriter); ok {
		var buf bytes.Buffer
		if err := tw.WriteText(&buf, f.styles()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return []byte(fmt.Sprintf("%v\n", data)), nil
}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	if tw, ok := data.(TextWriter); ok {
		return tw.WriteText(w, f.styles())
	}
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

func (f *TextFormatter) styles() *Styles {
	if f.Styles == nil {
		return PlainStyles()
	}
	return f.Styles
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format converts data to JSON format.
func (f *JSONFormatter) Format(data interface{}) ([]byte, error) {
	if f.Indent {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct{}

// Format converts data to YAML format.
func (f *YAMLFormatter) Format(data interface{}) ([]byte, error) {
	return yaml.Marshal(data)
}

// FormatTo writes data to writer in YAML format.
func (f *YAMLFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// NewFormatter creates a new formatter for the specified format.
// Unknown formats fall back to text.
func NewFormatter(format OutputFormat, styles *Styles) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{Styles: styles}
	}
}
