package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// New returns an empty Model; the first field it issues gets id zero.
func New() *Model {
	return internalmodel.New()
}

// NewField builds a field for a palette token with the given id. Unknown
// tokens never fail; they receive FallbackLabel.
func NewField(token string, id int) Field {
	return internalmodel.NewField(token, id)
}

// FieldTypes lists the palette in display order.
func FieldTypes() []FieldType {
	return internalmodel.FieldTypes()
}

// ParseFieldType maps a token onto the enumeration, returning
// ErrUnknownFieldType alongside the raw type when it is not recognised.
func ParseFieldType(token string) (FieldType, error) {
	return internalmodel.ParseFieldType(token)
}

// DefaultLabel returns the palette label for a type.
func DefaultLabel(t FieldType) string {
	return internalmodel.DefaultLabel(t)
}

// ParseOptions splits an edit-dialog option blob into an option list.
func ParseOptions(text string) []string {
	return internalmodel.ParseOptions(text)
}

// FormatOptions joins options into the newline-delimited dialog form.
func FormatOptions(options []string) string {
	return internalmodel.FormatOptions(options)
}
