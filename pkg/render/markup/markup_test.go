package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/render/markup"
)

func TestWrite_EscapesTextAndAttributes(t *testing.T) {
	root := markup.Append(
		markup.Element("div", markup.Attr("class", "form-field"), markup.Attr("title", `say "hi"`)),
		markup.Text("a < b & c"),
		markup.Element("input", markup.Attr("type", "text"), markup.Flag("required")),
	)

	got, err := markup.String(root)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `<div class="form-field" title="say &#34;hi&#34;">a &lt; b &amp; c<input type="text" required=""/></div>`
	if got != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestFragment_WritesChildrenOnly(t *testing.T) {
	frag := markup.Fragment(markup.Element("p"), markup.Element("span"))
	got, err := markup.String(frag)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if got != "<p></p><span></span>" {
		t.Fatalf("unexpected fragment output: %s", got)
	}
}

func TestClassHelpers(t *testing.T) {
	node := markup.Element("input", markup.Attr("class", "a b"))
	markup.AddClass(node, "field-invalid")
	markup.AddClass(node, "field-invalid")
	if diff := cmp.Diff([]string{"a", "b", "field-invalid"}, markup.Classes(node)); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	markup.RemoveClass(node, "a")
	markup.RemoveClass(node, "b")
	markup.RemoveClass(node, "field-invalid")
	if markup.HasAttr(node, "class") {
		t.Fatalf("expected empty class attribute to be dropped")
	}
}

func TestBindings(t *testing.T) {
	var bindings markup.Bindings
	edit := markup.Element("button")
	del := markup.Element("button")
	bindings.Bind(edit, markup.ActionEdit, 4)
	bindings.Bind(del, markup.ActionDelete, 4)

	got, ok := bindings.Lookup(del)
	if !ok || got.Action != markup.ActionDelete || got.FieldID != 4 {
		t.Fatalf("unexpected lookup result: %+v (%v)", got, ok)
	}
	if diff := cmp.Diff([]markup.Action{markup.ActionEdit, markup.ActionDelete}, bindings.ForField(4)); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	if value, _ := markup.AttrValue(edit, "data-action"); value != "edit" {
		t.Fatalf("expected data-action mirror, got %q", value)
	}
	if _, ok := bindings.Lookup(markup.Element("button")); ok {
		t.Fatalf("unbound node must not resolve")
	}
}
