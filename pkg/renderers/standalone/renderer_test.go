package standalone_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/renderers/standalone"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func renderPage(t *testing.T, renderer *standalone.Renderer, doc model.Document, opts render.RenderOptions) string {
	t.Helper()
	out, err := renderer.Render(testsupport.Context(), doc, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func newRenderer(t *testing.T, opts ...standalone.Option) *standalone.Renderer {
	t.Helper()
	renderer, err := standalone.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_SelfContainedDocument(t *testing.T) {
	page := renderPage(t, newRenderer(t), testsupport.SampleDocument(), render.RenderOptions{})

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Generated Form</title>",
		"<style>",
		"--accent: #667eea;",
		`<form method="post">`,
		`<button type="submit" class="btn-submit">Submit</button>`,
		`<select id="field_7" name="field_7"><option value="">Select an option</option>`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}
	for _, unwanted := range []string{"<script", "<link", "data-action", "btn-edit", "btn-delete", "data-id"} {
		if strings.Contains(page, unwanted) {
			t.Fatalf("page should not contain %q", unwanted)
		}
	}
}

func TestRenderer_FieldOrderMatchesDocument(t *testing.T) {
	doc := model.Document{
		model.NewField("email", 9),
		model.NewField("text", 2),
		model.NewField("number", 5),
	}
	page := renderPage(t, newRenderer(t), doc, render.RenderOptions{})

	first := strings.Index(page, `name="field_9"`)
	second := strings.Index(page, `name="field_2"`)
	third := strings.Index(page, `name="field_5"`)
	if first < 0 || !(first < second && second < third) {
		t.Fatalf("fields out of order: %d %d %d", first, second, third)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	renderer := newRenderer(t)
	doc := testsupport.SampleDocument()

	first := renderPage(t, renderer, doc, render.RenderOptions{})
	second := renderPage(t, renderer, doc, render.RenderOptions{})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("render is not deterministic (-first +second):\n%s", diff)
	}
}

func TestRenderer_EscapesTitleAndContent(t *testing.T) {
	field := model.NewField("text", 1)
	field.Label = `<script>alert("x")</script>`

	page := renderPage(t, newRenderer(t), model.Document{field}, render.RenderOptions{Title: "A & B", Lang: "fr"})
	if strings.Contains(page, "<script>") {
		t.Fatalf("label was not escaped:\n%s", page)
	}
	if !strings.Contains(page, "<title>A &amp; B</title>") {
		t.Fatalf("title was not escaped:\n%s", page)
	}
	if !strings.Contains(page, `<html lang="fr">`) {
		t.Fatalf("lang not applied")
	}
}

func TestRenderer_ThemeVariant(t *testing.T) {
	selector, err := standalone.NewSelector(standalone.DefaultManifest())
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	renderer := newRenderer(t, standalone.WithThemeSelector(selector, standalone.DefaultTheme, "dark"))

	page := renderPage(t, renderer, nil, render.RenderOptions{})
	if !strings.Contains(page, "--accent: #818cf8;") {
		t.Fatalf("dark variant tokens not applied:\n%s", page)
	}
}

func TestRenderer_ExplicitThemeConfigSkipsUnsafeValues(t *testing.T) {
	page := renderPage(t, newRenderer(t), nil, render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme: "custom",
			CSSVars: map[string]string{
				"--accent": "#000000",
				"--text":   "red;}</style><script>",
			},
		},
	})
	if !strings.Contains(page, ":root {\n--accent: #000000;\n}") {
		t.Fatalf("explicit theme not applied:\n%s", page)
	}
	if strings.Contains(page, "<script>") {
		t.Fatalf("unsafe css value leaked into page")
	}
}

func TestRenderer_CustomStylesheet(t *testing.T) {
	page := renderPage(t, newRenderer(t, standalone.WithStylesheet("form { gap: 1rem; }")), nil, render.RenderOptions{})
	if !strings.Contains(page, "form { gap: 1rem; }") {
		t.Fatalf("custom stylesheet missing")
	}
	if strings.Contains(page, "max-width: 600px") {
		t.Fatalf("embedded stylesheet should be replaced")
	}
}

func TestBuildForm_HiddenFieldsAndAction(t *testing.T) {
	opts := render.RenderOptions{Action: "/signup"}.WithHidden(
		render.CSRFToken("_csrf", "tok"),
		render.Hidden("form_version", 3),
	)
	got, err := markup.String(standalone.BuildForm(model.Document{model.NewField("submit", 4)}, opts))
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	want := `<form method="post" action="/signup">` +
		`<input type="hidden" name="_csrf" value="tok"/>` +
		`<input type="hidden" name="form_version" value="3"/>` +
		`<div class="form-field form-field-submit"><button type="submit" class="btn-submit">Submit</button></div>` +
		`</form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestSelector_Errors(t *testing.T) {
	selector, err := standalone.NewSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	if _, err := selector.Select("missing", ""); !errors.Is(err, standalone.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := selector.Select("", "sepia"); !errors.Is(err, standalone.ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("default selection: %v", err)
	}
	if selection.Theme != standalone.DefaultTheme {
		t.Fatalf("expected default theme, got %q", selection.Theme)
	}
}

func TestRendererConfig_MergesVariant(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456", "font": "serif"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{Files: map[string]string{"print": "print.dark.css"}},
			},
		},
	}
	selector, err := standalone.NewSelector(manifest)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.WithDefaults("acme", "dark").Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	cfg := standalone.RendererConfig(selection)
	if cfg.Tokens["brand"] != "#654321" || cfg.Tokens["font"] != "serif" {
		t.Fatalf("tokens not merged with variant override: %v", cfg.Tokens)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("print"); got != "/assets/themes/acme/print.dark.css" {
		t.Fatalf("unexpected variant asset url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for missing asset, got %q", got)
	}
}
