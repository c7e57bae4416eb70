package model

// NewField builds a field for a palette token. It never fails: unknown tokens
// keep their raw type and receive FallbackLabel.
func NewField(token string, id int) Field {
	fieldType, _ := ParseFieldType(token)
	return Field{
		ID:          id,
		Type:        fieldType,
		Label:       DefaultLabel(fieldType),
		Placeholder: DefaultPlaceholder,
		Required:    false,
		Options:     DefaultOptions(fieldType),
	}
}
