package report

import (
	"encoding/json"
	"io"

	"github.com/andyballingall/deltaenv/internal/env"
)

// JSONReporter implements Reporter for JSON output. Absent fields are omitted.
type JSONReporter struct{}

func (jr *JSONReporter) Write(w io.Writer, s env.Snapshot) error {
	out := make(map[string]string)
	for _, f := range present(s) {
		out[f.Name] = f.Value
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
