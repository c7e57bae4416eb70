package template

import (
	"io"
)

// TemplateRenderer executes named or inline templates against a data map.
// When writers are supplied the rendered output is also written to each of
// them.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data map[string]any) error
}
