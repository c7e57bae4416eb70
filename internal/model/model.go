package model

import (
	"fmt"
	"slices"
)

// Patch carries the attributes the edit dialog commits for one field.
// Options is the raw newline-delimited text from the dialog.
type Patch struct {
	Label       string
	Placeholder string
	Required    bool
	Options     string
}

// Model owns the field document and the id counter. All mutation goes through
// its methods; reads hand out deep copies so callers cannot alias the
// document. Model is not safe for concurrent use; callers serialise events.
type Model struct {
	fields Document
	nextID int
}

// New returns an empty model whose first issued id is zero.
func New() *Model {
	return &Model{fields: Document{}}
}

// NewField issues the next id and builds a field for the token. The field is
// not appended.
func (m *Model) NewField(token string) Field {
	id := m.nextID
	m.nextID++
	return NewField(token, id)
}

// NextID reports the id the next NewField call will issue.
func (m *Model) NextID() int {
	return m.nextID
}

// Append adds the field at the end of the document.
func (m *Model) Append(field Field) error {
	if m.fields.index(field.ID) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateField, field.ID)
	}
	field = field.Clone()
	if !field.Type.HasOptions() {
		field.Options = []string{}
	}
	m.fields = append(m.fields, field)
	if field.ID >= m.nextID {
		m.nextID = field.ID + 1
	}
	return nil
}

// UpdateByID applies the patch to the matching field. It reports false, and
// changes nothing, when the id is absent.
func (m *Model) UpdateByID(id int, patch Patch) bool {
	idx := m.fields.index(id)
	if idx < 0 {
		return false
	}
	field := &m.fields[idx]
	field.Label = patch.Label
	field.Placeholder = patch.Placeholder
	field.Required = patch.Required
	if field.Type.HasOptions() {
		field.Options = ParseOptions(patch.Options)
	}
	return true
}

// DeleteByID removes the matching field, preserving the order of the rest.
// It reports false when the id is absent.
func (m *Model) DeleteByID(id int) bool {
	idx := m.fields.index(id)
	if idx < 0 {
		return false
	}
	m.fields = slices.Delete(m.fields, idx, idx+1)
	return true
}

// Clear empties the document. The counter is left alone so ids are never
// reissued within the session.
func (m *Model) Clear() {
	m.fields = Document{}
}

// ReplaceAll swaps the whole document and re-derives the counter as
// max(ids, 0) + 1. Documents with repeated ids are rejected untouched.
func (m *Model) ReplaceAll(doc Document) error {
	if err := doc.CheckUnique(); err != nil {
		return err
	}
	next := doc.Clone()
	for i := range next {
		if !next[i].Type.HasOptions() {
			next[i].Options = []string{}
		}
	}
	m.fields = next
	m.nextID = doc.MaxID() + 1
	return nil
}

// Fields returns a deep copy of the document.
func (m *Model) Fields() Document {
	return m.fields.Clone()
}

// Field returns a copy of the field with the given id.
func (m *Model) Field(id int) (Field, bool) {
	field, ok := m.fields.Find(id)
	if !ok {
		return Field{}, false
	}
	return field.Clone(), true
}

// Len reports the number of fields.
func (m *Model) Len() int {
	return len(m.fields)
}
