// Package codec converts form documents to and from their serialized forms:
// the structural JSON document (save/load and export), a YAML rendition of
// the same records, and standalone markup.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// File names used when exports are delivered.
const (
	StructuralFileName = "form-structure.json"
	YAMLFileName       = "form-structure.yaml"
	MarkupFileName     = "form.html"
)

// ErrMalformedDocument is returned when input is not a sequence of
// field-shaped records.
var ErrMalformedDocument = errors.New("codec: malformed document")

// EncodeStructural returns the compact JSON form used for persistence. An
// empty document encodes as [] and empty option lists as [].
func EncodeStructural(doc model.Document) ([]byte, error) {
	return encodeJSON(doc, "")
}

// EncodeStructuralIndent returns the two-space indented JSON export.
func EncodeStructuralIndent(doc model.Document) ([]byte, error) {
	return encodeJSON(doc, "  ")
}

func encodeJSON(doc model.Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc.Clone()); err != nil {
		return nil, fmt.Errorf("codec: encode structural: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type jsonRecord struct {
	ID          json.RawMessage `json:"id"`
	Type        *string         `json:"type"`
	Label       *string         `json:"label"`
	Placeholder *string         `json:"placeholder"`
	Required    *bool           `json:"required"`
	Options     []string        `json:"options"`
}

// DecodeStructural parses the structural JSON document. Each record needs a
// non-negative integer id and a string type; label, placeholder, required and
// options are optional. Ids must be unique. Options on types that do not
// carry them are dropped. Any violation returns ErrMalformedDocument.
func DecodeStructural(data []byte) (model.Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedDocument)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	doc := make(model.Document, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("%w: record %d: expected an object", ErrMalformedDocument, i)
		}
		var rec jsonRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedDocument, i, err)
		}
		id, err := strconv.Atoi(string(rec.ID))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: id must be an integer", ErrMalformedDocument, i)
		}
		field, err := buildField(i, &id, rec.Type, rec.Label, rec.Placeholder, rec.Required, rec.Options)
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

func buildField(i int, id *int, kind, label, placeholder *string, required *bool, options []string) (model.Field, error) {
	if id == nil || *id < 0 {
		return model.Field{}, fmt.Errorf("%w: record %d: id must be a non-negative integer", ErrMalformedDocument, i)
	}
	if kind == nil {
		return model.Field{}, fmt.Errorf("%w: record %d: type is required", ErrMalformedDocument, i)
	}

	field := model.Field{ID: *id, Type: model.FieldType(*kind), Options: []string{}}
	if label != nil {
		field.Label = *label
	}
	if placeholder != nil {
		field.Placeholder = *placeholder
	}
	if required != nil {
		field.Required = *required
	}
	if field.Type.HasOptions() && options != nil {
		field.Options = append(field.Options, options...)
	}
	return field, nil
}
