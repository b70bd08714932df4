package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/andyballingall/deltaenv/internal/env"
)

const unset = "<unset>"

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	UseColour bool
}

// cs returns a string which will render with the given attributes
// if colourisation is enabled.
func (tr *TextReporter) cs(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if tr.UseColour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (tr *TextReporter) Write(w io.Writer, s env.Snapshot) error {
	fields := s.Fields()

	width := 0
	for _, f := range fields {
		width = max(width, len(f.Name))
	}
	divider := strings.Repeat("-", width+20)

	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", divider, tr.cs("ENVIRONMENT SNAPSHOT", color.Bold, color.FgWhite), divider); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	for _, f := range fields {
		name := tr.cs(fmt.Sprintf("%-*s", width, f.Name), color.FgHiBlack)
		val := tr.cs(unset, color.FgHiBlack)
		if f.Present {
			val = tr.cs(fmt.Sprintf("%q", f.Value), color.FgGreen)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", name, val); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	_, err := fmt.Fprintf(w, "%s\n", divider)
	return err
}
