// Package standalone renders a form document as a complete, self-contained
// HTML page: inline stylesheet, no scripts, and a native submission form with
// no editing affordances.
package standalone

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-theme"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/render/shape"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

const (
	// Name is the registry name of the standalone renderer.
	Name = "standalone"
	// DefaultTitle is used when RenderOptions.Title is empty.
	DefaultTitle = "Generated Form"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// DocumentTemplate.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves themes through selector using the given theme
// and variant whenever RenderOptions.Theme is nil.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
			cfg.themeName = name
			cfg.themeVariant = variant
		}
	}
}

// WithStylesheet replaces the embedded stylesheet. The CSS is inlined
// verbatim, so it must come from a trusted source.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// Renderer produces exported form pages. It holds no per-document state and
// is safe for concurrent use.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	stylesheet   string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the standalone renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("standalone renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	if cfg.selector == nil {
		selector, err := NewSelector(DefaultManifest())
		if err != nil {
			return nil, err
		}
		cfg.selector = selector
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{
		templates:    templates,
		selector:     cfg.selector,
		themeName:    cfg.themeName,
		themeVariant: cfg.themeVariant,
		stylesheet:   stylesheet,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the page for doc. Only doc and opts are read.
func (r *Renderer) Render(ctx context.Context, doc model.Document, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := markup.String(BuildForm(doc, opts))
	if err != nil {
		return nil, fmt.Errorf("standalone renderer: %w", err)
	}

	themeConfig := opts.Theme
	if themeConfig == nil {
		selection, err := r.selector.Select(r.themeName, r.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("standalone renderer: select theme: %w", err)
		}
		themeConfig = RendererConfig(selection)
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var cssVars string
	if themeConfig != nil {
		cssVars = cssVarsStyle(themeConfig.CSSVars)
	}

	page, err := r.templates.RenderTemplate(DocumentTemplate, map[string]any{
		"lang":       opts.LangOrDefault(),
		"title":      title,
		"stylesheet": r.stylesheet,
		"css_vars":   cssVars,
		"form":       form,
	})
	if err != nil {
		return nil, fmt.Errorf("standalone renderer: render template: %w", err)
	}
	return []byte(page), nil
}

// BuildForm builds the <form> element for doc: hidden inputs first, then one
// container per field in document order.
func BuildForm(doc model.Document, opts render.RenderOptions) *html.Node {
	form := markup.Element("form", markup.Attr("method", "post"))
	if opts.Action != "" {
		markup.SetAttr(form, "action", opts.Action)
	}
	for _, hidden := range render.SortedHiddenFields(opts.Hidden) {
		form.AppendChild(markup.Element("input",
			markup.Attr("type", "hidden"),
			markup.Attr("name", hidden.Name),
			markup.Attr("value", hidden.Value),
		))
	}

	fieldOpts := shape.Options{Mode: shape.Standalone}
	for _, field := range doc {
		form.AppendChild(shape.Field(field, fieldOpts))
	}
	return form
}
