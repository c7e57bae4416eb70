package model

// FallbackLabel is used for tokens outside the FieldType enumeration.
const FallbackLabel = "Field"

// DefaultPlaceholder seeds every new field's hint text.
const DefaultPlaceholder = "Enter value"

// DefaultLabel returns the palette label for a field type.
func DefaultLabel(t FieldType) string {
	switch t {
	case FieldTypeText:
		return "Text Input"
	case FieldTypeEmail:
		return "Email Address"
	case FieldTypePassword:
		return "Password"
	case FieldTypeNumber:
		return "Number"
	case FieldTypeTextarea:
		return "Text Area"
	case FieldTypeRadio:
		return "Radio Buttons"
	case FieldTypeCheckbox:
		return "Checkboxes"
	case FieldTypeSelect:
		return "Dropdown"
	case FieldTypeDate:
		return "Date"
	case FieldTypeFile:
		return "File Upload"
	case FieldTypeSubmit:
		return "Submit"
	default:
		return FallbackLabel
	}
}

// DefaultOptions returns the seed option list for option-bearing types and an
// empty (non-nil) slice for everything else.
func DefaultOptions(t FieldType) []string {
	if !t.HasOptions() {
		return []string{}
	}
	return []string{"Option 1", "Option 2", "Option 3"}
}
