package render

import (
	"github.com/goliatone/go-theme"
)

// RenderOptions describe per-call data renderers can use to customise their
// output. Every field is optional.
type RenderOptions struct {
	// Title is used as the document title and form heading by page renderers.
	Title string
	// Lang sets the html lang attribute. Defaults to "en".
	Lang string
	// Action is the form action URL. Empty keeps the browser default (the
	// current document).
	Action string
	// Hidden fields are emitted inside the form before the visible controls.
	Hidden map[string]string
	// Theme carries resolved theme tokens. Renderers that support theming
	// fall back to their own selection when nil.
	Theme *theme.RendererConfig
}

// LangOrDefault returns the configured language or "en".
func (o RenderOptions) LangOrDefault() string {
	if o.Lang == "" {
		return "en"
	}
	return o.Lang
}
