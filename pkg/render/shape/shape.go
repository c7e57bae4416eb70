// Package shape builds the per-type node shape for one field. The interactive
// canvas and the standalone export both call it, so a type's markup is
// defined exactly once; Mode only toggles editing affordances and how the
// submit field behaves.
package shape

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
)

// Mode selects the rendering surface.
type Mode int

const (
	// Interactive renders the editing canvas: action bars, bound buttons and a
	// submit control wired to validation.
	Interactive Mode = iota
	// Standalone renders exported markup: no affordances and a native submit.
	Standalone
)

const (
	// EmptyMessage is the canvas placeholder text for an empty document.
	EmptyMessage = "Drag and drop elements here to build your form"
	// SelectPrompt labels the blank leading option of a dropdown.
	SelectPrompt = "Select an option"
	// RequiredGlyph marks required fields next to their label.
	RequiredGlyph = "*"
)

// Options configures Field.
type Options struct {
	Mode Mode
	// Bindings collects edit/delete/submit bindings in Interactive mode.
	Bindings *markup.Bindings
}

// ControlName is the name (and id for single controls) of a field's control.
// Values submitted for the field are keyed by it.
func ControlName(id int) string {
	return "field_" + strconv.Itoa(id)
}

// FieldID parses a ControlName back into the field id.
func FieldID(name string) (int, bool) {
	const prefix = "field_"
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return 0, false
	}
	id, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return 0, false
	}
	return id, true
}

// EmptyPlaceholder is the single node rendered for an empty canvas.
func EmptyPlaceholder() *html.Node {
	return markup.Append(
		markup.Element("p", markup.Attr("class", "empty-message")),
		markup.Text(EmptyMessage),
	)
}

// Field builds the labeled container for one field.
func Field(field model.Field, opts Options) *html.Node {
	container := markup.Element("div", markup.Attr("class", "form-field"))
	if opts.Mode == Interactive {
		markup.SetAttr(container, "data-id", strconv.Itoa(field.ID))
	}

	if field.Type == model.FieldTypeSubmit {
		markup.AddClass(container, "form-field-submit")
		if opts.Mode == Interactive {
			container.AppendChild(actionBar(field, opts.Bindings, false))
		}
		return markup.Append(container, submitButton(field, opts))
	}

	if opts.Mode == Interactive {
		container.AppendChild(actionBar(field, opts.Bindings, true))
	}
	return markup.Append(container, label(field), Control(field, opts))
}

// Control builds the type-specific input control. Only the submit arm reads
// opts: it binds an action button in Interactive mode.
func Control(field model.Field, opts Options) *html.Node {
	name := ControlName(field.ID)

	switch field.Type {
	case model.FieldTypeText, model.FieldTypeEmail, model.FieldTypePassword,
		model.FieldTypeNumber, model.FieldTypeDate, model.FieldTypeFile:
		return input(field, string(field.Type), name)
	case model.FieldTypeTextarea:
		area := markup.Element("textarea",
			markup.Attr("id", name),
			markup.Attr("name", name),
			markup.Attr("placeholder", field.Placeholder),
		)
		if field.Required {
			area.Attr = append(area.Attr, markup.Flag("required"))
		}
		return area
	case model.FieldTypeRadio:
		group := markup.Element("div", markup.Attr("class", "radio-group"))
		for i, option := range field.Options {
			radio := markup.Element("input",
				markup.Attr("type", "radio"),
				markup.Attr("name", name),
				markup.Attr("value", option),
			)
			// a radio group's required-ness lives on one representative control
			if field.Required && i == 0 {
				radio.Attr = append(radio.Attr, markup.Flag("required"))
			}
			group.AppendChild(choice(radio, option))
		}
		return group
	case model.FieldTypeCheckbox:
		// required is not propagated to individual checkboxes
		group := markup.Element("div", markup.Attr("class", "checkbox-group"))
		for _, option := range field.Options {
			box := markup.Element("input",
				markup.Attr("type", "checkbox"),
				markup.Attr("name", name),
				markup.Attr("value", option),
			)
			group.AppendChild(choice(box, option))
		}
		return group
	case model.FieldTypeSelect:
		sel := markup.Element("select", markup.Attr("id", name), markup.Attr("name", name))
		if field.Required {
			sel.Attr = append(sel.Attr, markup.Flag("required"))
		}
		sel.AppendChild(markup.Append(markup.Element("option", markup.Attr("value", "")), markup.Text(SelectPrompt)))
		for _, option := range field.Options {
			sel.AppendChild(markup.Append(markup.Element("option", markup.Attr("value", option)), markup.Text(option)))
		}
		return sel
	case model.FieldTypeSubmit:
		return submitButton(field, opts)
	default:
		return input(field, "text", name)
	}
}

func input(field model.Field, inputType, name string) *html.Node {
	node := markup.Element("input",
		markup.Attr("type", inputType),
		markup.Attr("id", name),
		markup.Attr("name", name),
		markup.Attr("placeholder", field.Placeholder),
	)
	if field.Required {
		node.Attr = append(node.Attr, markup.Flag("required"))
	}
	return node
}

func choice(control *html.Node, option string) *html.Node {
	return markup.Append(markup.Element("label"), control, markup.Text(" "+option))
}

func label(field model.Field) *html.Node {
	node := markup.Element("label")
	if !field.Type.HasOptions() {
		markup.SetAttr(node, "for", ControlName(field.ID))
	}
	node.AppendChild(markup.Text(field.Label))
	if field.Required {
		node.AppendChild(markup.Text(" "))
		node.AppendChild(markup.Append(markup.Element("span", markup.Attr("class", "required")), markup.Text(RequiredGlyph)))
	}
	return node
}

func actionBar(field model.Field, bindings *markup.Bindings, editable bool) *html.Node {
	bar := markup.Element("div", markup.Attr("class", "field-actions"))
	if editable {
		edit := markup.Append(
			markup.Element("button", markup.Attr("type", "button"), markup.Attr("class", "btn-edit")),
			markup.Text("Edit"),
		)
		bindings.Bind(edit, markup.ActionEdit, field.ID)
		bar.AppendChild(edit)
	}
	del := markup.Append(
		markup.Element("button", markup.Attr("type", "button"), markup.Attr("class", "btn-delete")),
		markup.Text("Delete"),
	)
	bindings.Bind(del, markup.ActionDelete, field.ID)
	bar.AppendChild(del)
	return bar
}

func submitButton(field model.Field, opts Options) *html.Node {
	if opts.Mode == Interactive {
		button := markup.Append(
			markup.Element("button", markup.Attr("type", "button"), markup.Attr("class", "btn-submit")),
			markup.Text(field.Label),
		)
		opts.Bindings.Bind(button, markup.ActionSubmit, field.ID)
		return button
	}
	return markup.Append(
		markup.Element("button", markup.Attr("type", "submit"), markup.Attr("class", "btn-submit")),
		markup.Text(field.Label),
	)
}
