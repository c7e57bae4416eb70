package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// FieldType is the closed set of field kinds the palette can drop onto the
// canvas. Unknown tokens are still representable so untrusted payloads never
// fail; every consumer routes them through an explicit fallback arm.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePassword FieldType = "password"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeDate     FieldType = "date"
	FieldTypeFile     FieldType = "file"
	FieldTypeSubmit   FieldType = "submit"
)

var (
	// ErrUnknownFieldType reports a token outside the FieldType enumeration.
	ErrUnknownFieldType = errors.New("model: unknown field type")
	// ErrFieldNotFound reports an id that does not match any field.
	ErrFieldNotFound = errors.New("model: field not found")
	// ErrDuplicateField reports a field id that already exists in the document.
	ErrDuplicateField = errors.New("model: duplicate field id")
)

// FieldTypes lists the enumeration in palette order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeEmail,
		FieldTypePassword,
		FieldTypeNumber,
		FieldTypeTextarea,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeSelect,
		FieldTypeDate,
		FieldTypeFile,
		FieldTypeSubmit,
	}
}

// ParseFieldType maps a raw token onto the enumeration. The returned type is
// always usable: unknown tokens come back verbatim alongside
// ErrUnknownFieldType so callers can decide whether to care.
func ParseFieldType(token string) (FieldType, error) {
	candidate := FieldType(strings.TrimSpace(token))
	if candidate.Known() {
		return candidate, nil
	}
	return FieldType(token), fmt.Errorf("%w: %q", ErrUnknownFieldType, token)
}

// Known reports whether the type belongs to the enumeration.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypePassword, FieldTypeNumber,
		FieldTypeTextarea, FieldTypeRadio, FieldTypeCheckbox, FieldTypeSelect,
		FieldTypeDate, FieldTypeFile, FieldTypeSubmit:
		return true
	default:
		return false
	}
}

// HasOptions reports whether fields of this type carry a selectable option
// list (radio, checkbox, select).
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeRadio, FieldTypeCheckbox, FieldTypeSelect:
		return true
	default:
		return false
	}
}

// Field is one typed input definition on the canvas. The JSON and YAML tags
// define the structural document record shape.
type Field struct {
	ID          int       `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder" yaml:"placeholder"`
	Required    bool      `json:"required" yaml:"required"`
	Options     []string  `json:"options" yaml:"options"`
}

// Clone returns a deep copy. Options are never nil on the copy.
func (f Field) Clone() Field {
	out := f
	out.Options = append(make([]string, 0, len(f.Options)), f.Options...)
	return out
}

// Document is the ordered field sequence for the single form being designed.
// Slice order is display order and submission order.
type Document []Field

// Clone deep copies every field. A nil document clones to an empty one.
func (d Document) Clone() Document {
	out := make(Document, 0, len(d))
	for _, field := range d {
		out = append(out, field.Clone())
	}
	return out
}

// IDs returns the field ids in document order.
func (d Document) IDs() []int {
	ids := make([]int, 0, len(d))
	for _, field := range d {
		ids = append(ids, field.ID)
	}
	return ids
}

// Find returns the field with the given id.
func (d Document) Find(id int) (Field, bool) {
	idx := d.index(id)
	if idx < 0 {
		return Field{}, false
	}
	return d[idx], true
}

// MaxID returns the highest id in the document, or zero when empty or when
// every id is negative.
func (d Document) MaxID() int {
	maxID := 0
	for _, field := range d {
		maxID = max(maxID, field.ID)
	}
	return maxID
}

// CheckUnique returns ErrDuplicateField for the first repeated id.
func (d Document) CheckUnique() error {
	seen := make(map[int]struct{}, len(d))
	for _, field := range d {
		if _, ok := seen[field.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateField, field.ID)
		}
		seen[field.ID] = struct{}{}
	}
	return nil
}

func (d Document) index(id int) int {
	return slices.IndexFunc(d, func(field Field) bool {
		return field.ID == id
	})
}
