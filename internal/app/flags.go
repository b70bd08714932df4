package app

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"github.com/andyballingall/deltaenv/internal/report"
)

var (
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*optionalString)(nil)
)

// formatValue implements pflag.Value to provide a custom type name in help text
// and validation for output formats.
type formatValue report.Format

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(v string) error {
	if !slices.Contains(report.Formats, report.Format(v)) {
		return fmt.Errorf("must be 'text', 'json' or 'yaml'")
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "<format>"
}

// optionalString implements pflag.Value for a flag whose presence matters,
// so that an explicitly empty value is distinguishable from no value.
type optionalString struct {
	value *string
}

func (o *optionalString) String() string {
	if o.value == nil {
		return ""
	}
	return *o.value
}

func (o *optionalString) Set(v string) error {
	o.value = &v
	return nil
}

func (o *optionalString) Type() string {
	return "<name>"
}
