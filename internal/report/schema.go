package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaID is the $id of the JSON output schema.
const SchemaID = "https://deltaenv.local/snapshot.schema.json"

//go:embed snapshot.schema.json
var schemaJSON []byte

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err = c.AddResource(SchemaID, doc); err != nil {
		return nil, err
	}
	return c.Compile(SchemaID)
})

// Schema returns the JSON Schema describing JSONReporter output.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// Validate checks that data is a JSON document produced by JSONReporter.
func Validate(data []byte) error {
	sch, err := compiled()
	if err != nil {
		return fmt.Errorf("failed to compile snapshot schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("snapshot is not valid JSON: %w", err)
	}
	return sch.Validate(doc)
}
