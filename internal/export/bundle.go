// Package export writes a snapshot of the Document in formats meant for
// people: archives, spreadsheets and a printable plan.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/roach88/terminus/internal/record"
)

// Bundle is one export of the Document. Every export gets its own ID so
// copies handed to different people can be told apart.
type Bundle struct {
	ExportID   string          `json:"exportId" yaml:"exportId"`
	ExportedAt string          `json:"exportedAt" yaml:"exportedAt"`
	Document   record.Document `json:"document" yaml:"document"`
}

// NewBundle snapshots doc at now. The export ID is a UUIDv7, so IDs sort by
// export time.
func NewBundle(doc record.Document, now time.Time) (Bundle, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Bundle{}, fmt.Errorf("new export id: %w", err)
	}
	return Bundle{
		ExportID:   id.String(),
		ExportedAt: record.Timestamp(now),
		Document:   doc.Clone(),
	}, nil
}

// WriteJSON writes the bundle as indented JSON.
func (b Bundle) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteYAML writes the bundle as YAML.
func (b Bundle) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatWorkbook Format = "xlsx"
	FormatHTML     Format = "html"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatJSON, FormatYAML, FormatWorkbook, FormatHTML}

// Write encodes the bundle in the given format.
func (b Bundle) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return b.WriteJSON(w)
	case FormatYAML:
		return b.WriteYAML(w)
	case FormatWorkbook:
		return b.WriteWorkbook(w)
	case FormatHTML:
		return b.WriteHTML(w)
	default:
		return fmt.Errorf("unknown export format %q: must be one of %v", format, Formats)
	}
}
