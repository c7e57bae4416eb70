// Package validation checks a rendered canvas for required controls that have
// no value and marks each control with its validation state.
package validation

import (
	"errors"
	"slices"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/render/shape"
)

// ErrValidationFailed is reported when a submit finds unfilled required
// controls.
var ErrValidationFailed = errors.New("validation: required fields are empty")

const (
	// StateAttr carries the validation state of a control after Validate.
	StateAttr = "data-validation"
	// StateValid and StateInvalid are the values of StateAttr.
	StateValid   = "valid"
	StateInvalid = "invalid"
	// InvalidClass is added to invalid controls and removed from valid ones.
	InvalidClass = "field-invalid"
)

// Values supplies the current value of a control by its name. url.Values
// satisfies it.
type Values interface {
	Get(name string) string
}

// Issue describes one invalid control.
type Issue struct {
	FieldID int    `json:"field_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Result is the outcome of a validation pass.
type Result struct {
	Valid      bool    `json:"valid"`
	InvalidIDs []int   `json:"invalid_ids,omitempty"`
	Issues     []Issue `json:"issues,omitempty"`
}

// Err returns ErrValidationFailed for an invalid result and nil otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return ErrValidationFailed
}

// Validate walks the controls below root. A control is invalid iff it
// carries the required attribute and values has no value for its name. Every
// visited control is marked with StateAttr. A nil values reads as empty.
func Validate(root *html.Node, values Values) Result {
	result := Result{Valid: true}

	markup.Walk(root, func(node *html.Node) bool {
		if !isControl(node) {
			return true
		}
		name, _ := markup.AttrValue(node, "name")
		if markup.HasAttr(node, "required") && lookup(values, name) == "" {
			markInvalid(node)
			result.Valid = false
			id, ok := shape.FieldID(name)
			if ok && !slices.Contains(result.InvalidIDs, id) {
				result.InvalidIDs = append(result.InvalidIDs, id)
			}
			result.Issues = append(result.Issues, Issue{FieldID: id, Name: name, Message: "required"})
			return false
		}
		markValid(node)
		return false
	})
	return result
}

func isControl(node *html.Node) bool {
	if node.Type != html.ElementNode {
		return false
	}
	switch node.Data {
	case "textarea", "select":
		return true
	case "input":
		kind, _ := markup.AttrValue(node, "type")
		return kind != "hidden"
	default:
		return false
	}
}

func lookup(values Values, name string) string {
	if values == nil || name == "" {
		return ""
	}
	return values.Get(name)
}

func markInvalid(node *html.Node) {
	markup.SetAttr(node, StateAttr, StateInvalid)
	markup.AddClass(node, InvalidClass)
}

func markValid(node *html.Node) {
	markup.SetAttr(node, StateAttr, StateValid)
	markup.RemoveClass(node, InvalidClass)
}
