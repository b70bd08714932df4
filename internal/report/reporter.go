// Package report renders environment snapshots for display.
package report

import (
	"fmt"
	"io"

	"github.com/andyballingall/deltaenv/internal/env"
)

// Format identifies an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Reporter writes a snapshot to w.
type Reporter interface {
	Write(w io.Writer, s env.Snapshot) error
}

// UnknownFormatError is returned by New for unsupported formats.
type UnknownFormatError struct {
	Format Format
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format '%s'. Supported formats are: %v", e.Format, Formats)
}

// New returns the Reporter for f.
func New(f Format, useColour bool) (Reporter, error) {
	switch f {
	case FormatText, "":
		return &TextReporter{UseColour: useColour}, nil
	case FormatJSON:
		return &JSONReporter{}, nil
	case FormatYAML:
		return &YAMLReporter{}, nil
	default:
		return nil, &UnknownFormatError{Format: f}
	}
}

// present returns only the fields that were set at capture time.
func present(s env.Snapshot) []env.Field {
	var out []env.Field
	for _, f := range s.Fields() {
		if f.Present {
			out = append(out, f)
		}
	}
	return out
}
