// Package canvas renders the editable builder canvas: one container per field
// with edit/delete affordances, returned as a node tree plus the bindings the
// orchestrator dispatches on.
package canvas

import (
	"context"
	"fmt"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/render/shape"
)

// Name is the registry name of the canvas renderer.
const Name = "canvas"

// View is a rendered canvas. Root is a fragment whose children are either the
// empty placeholder or one container per field in document order.
type View struct {
	Root     *html.Node
	Bindings *markup.Bindings
}

// Containers returns the field containers of the view in order.
func (v View) Containers() []*html.Node {
	var out []*html.Node
	for _, child := range markup.Children(v.Root) {
		if markup.HasClass(child, "form-field") {
			out = append(out, child)
		}
	}
	return out
}

// Controls returns the rendered control nodes named for field id. Choice
// groups yield one node per option.
func (v View) Controls(id int) []*html.Node {
	name := shape.ControlName(id)
	return markup.Find(v.Root, func(n *html.Node) bool {
		value, ok := markup.AttrValue(n, "name")
		return ok && value == name
	})
}

// Build renders doc into a fresh view. It reads nothing but doc.
func Build(doc model.Document) View {
	root := markup.Fragment()
	bindings := &markup.Bindings{}

	if len(doc) == 0 {
		root.AppendChild(shape.EmptyPlaceholder())
		return View{Root: root, Bindings: bindings}
	}

	opts := shape.Options{Mode: shape.Interactive, Bindings: bindings}
	for _, field := range doc {
		root.AppendChild(shape.Field(field, opts))
	}
	return View{Root: root, Bindings: bindings}
}

// Renderer exposes Build through the render.Renderer contract, producing an
// HTML fragment suitable for swapping into a page.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the canvas renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc model.Document, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := markup.Bytes(Build(doc).Root)
	if err != nil {
		return nil, fmt.Errorf("canvas renderer: %w", err)
	}
	return out, nil
}
