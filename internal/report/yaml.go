package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/deltaenv/internal/env"
)

// YAMLReporter implements Reporter for YAML output. Fields keep snapshot
// order and absent fields are omitted.
type YAMLReporter struct{}

func (yr *YAMLReporter) Write(w io.Writer, s env.Snapshot) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range present(s) {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
