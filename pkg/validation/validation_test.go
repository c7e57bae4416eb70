package validation_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/renderers/canvas"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func requiredField(token string, id int) model.Field {
	field := model.NewField(token, id)
	field.Required = true
	return field
}

func state(t *testing.T, node *html.Node) string {
	t.Helper()
	value, ok := markup.AttrValue(node, validation.StateAttr)
	if !ok {
		t.Fatalf("control %v carries no validation state", node.Attr)
	}
	return value
}

func TestValidate_RequiredTextLifecycle(t *testing.T) {
	view := canvas.Build(model.Document{requiredField("text", 3)})
	control := view.Controls(3)[0]

	result := validation.Validate(view.Root, url.Values{})
	if result.Valid {
		t.Fatal("expected empty required field to be invalid")
	}
	if diff := cmp.Diff([]int{3}, result.InvalidIDs); diff != "" {
		t.Fatalf("invalid ids mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(result.Err(), validation.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", result.Err())
	}
	if state(t, control) != validation.StateInvalid || !markup.HasClass(control, validation.InvalidClass) {
		t.Fatalf("control not marked invalid: %v", control.Attr)
	}

	result = validation.Validate(view.Root, url.Values{"field_3": {"Ada"}})
	if !result.Valid || len(result.InvalidIDs) != 0 {
		t.Fatalf("expected valid result, got %+v", result)
	}
	if result.Err() != nil {
		t.Fatalf("expected nil error, got %v", result.Err())
	}
	if state(t, control) != validation.StateValid || markup.HasClass(control, validation.InvalidClass) {
		t.Fatalf("control not reset to valid: %v", control.Attr)
	}
}

func TestValidate_ChoiceControls(t *testing.T) {
	doc := model.Document{
		requiredField("radio", 1),
		requiredField("select", 2),
		requiredField("checkbox", 3),
		model.NewField("email", 4),
	}

	tests := []struct {
		name   string
		values url.Values
		want   []int
	}{
		{name: "nothing selected", values: url.Values{}, want: []int{1, 2}},
		{name: "radio picked", values: url.Values{"field_1": {"Option 2"}}, want: []int{2}},
		{name: "blank select option", values: url.Values{"field_1": {"Option 1"}, "field_2": {""}}, want: []int{2}},
		{name: "all picked", values: url.Values{"field_1": {"Option 1"}, "field_2": {"Option 3"}}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := canvas.Build(doc)
			result := validation.Validate(view.Root, tt.values)
			if diff := cmp.Diff(tt.want, result.InvalidIDs); diff != "" {
				t.Fatalf("invalid ids mismatch (-want +got):\n%s", diff)
			}
			if result.Valid != (len(tt.want) == 0) {
				t.Fatalf("valid flag %v inconsistent with %v", result.Valid, tt.want)
			}
		})
	}
}

func TestValidate_CheckboxNeverEnforced(t *testing.T) {
	view := canvas.Build(model.Document{requiredField("checkbox", 5)})

	result := validation.Validate(view.Root, nil)
	if !result.Valid {
		t.Fatalf("checkbox groups must not be enforced, got %+v", result)
	}
	for _, box := range view.Controls(5) {
		if state(t, box) != validation.StateValid {
			t.Fatalf("checkbox should be marked valid")
		}
	}
}

func TestValidate_EmptyCanvasIsValid(t *testing.T) {
	view := canvas.Build(nil)
	if result := validation.Validate(view.Root, nil); !result.Valid {
		t.Fatalf("empty canvas should validate, got %+v", result)
	}
}

func TestValidate_IssuesNameControls(t *testing.T) {
	view := canvas.Build(model.Document{requiredField("textarea", 8)})
	result := validation.Validate(view.Root, nil)

	want := []validation.Issue{{FieldID: 8, Name: "field_8", Message: "required"}}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}
