package codec

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// EncodeYAML renders the structural records as a YAML sequence.
func EncodeYAML(doc model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc.Clone()); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

type yamlRecord struct {
	ID          *int     `yaml:"id"`
	Type        *string  `yaml:"type"`
	Label       *string  `yaml:"label"`
	Placeholder *string  `yaml:"placeholder"`
	Required    *bool    `yaml:"required"`
	Options     []string `yaml:"options"`
}

// DecodeYAML parses a YAML sequence of structural records with the same
// rules as DecodeStructural.
func DecodeYAML(data []byte) (model.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a YAML sequence", ErrMalformedDocument)
	}

	items := root.Content[0].Content
	doc := make(model.Document, 0, len(items))
	for i, item := range items {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: record %d: expected a mapping", ErrMalformedDocument, i)
		}
		var rec yamlRecord
		if err := item.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedDocument, i, err)
		}
		field, err := buildField(i, rec.ID, rec.Type, rec.Label, rec.Placeholder, rec.Required, rec.Options)
		if err != nil {
			return nil, err
		}
		doc = append(doc, field)
	}

	if err := doc.CheckUnique(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}
