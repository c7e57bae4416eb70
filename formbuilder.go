// Package formbuilder is the top-level entry point: it re-exports the
// document types and wires the default orchestrator and renderers.
package formbuilder

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/codec"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/standalone"
)

// Field is one entry of the form document.
type Field = model.Field

// Document is the ordered field list the builder edits.
type Document = model.Document

// RenderOptions describes per-render overrides such as the page title,
// hidden submission fields and an explicit theme.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderStandalone renders doc as a self-contained HTML page with the
// default theme.
func RenderStandalone(ctx context.Context, doc Document, opts RenderOptions) ([]byte, error) {
	renderer, err := standalone.New()
	if err != nil {
		return nil, err
	}
	return codec.EncodeStandaloneMarkup(ctx, doc, renderer, opts)
}

// DecodeDocument decodes a structural document, choosing YAML for .yaml and
// .yml names and JSON otherwise.
func DecodeDocument(name string, data []byte) (Document, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return codec.DecodeYAML(data)
	default:
		return codec.DecodeStructural(data)
	}
}
