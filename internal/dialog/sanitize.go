package dialog

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// HasMarkup reports whether raw contains tags a strict sanitizer would strip.
// Renderers escape text on output, so the input itself is never rewritten.
func HasMarkup(raw string) bool {
	if raw == "" {
		return false
	}
	text := lineEndings.Replace(raw)
	return html.UnescapeString(textSanitizer().Sanitize(text)) != text
}

// markupAttributes lists the patch attributes that carry markup.
func markupAttributes(patch model.Patch) []string {
	var out []string
	if HasMarkup(patch.Label) {
		out = append(out, "label")
	}
	if HasMarkup(patch.Placeholder) {
		out = append(out, "placeholder")
	}
	if HasMarkup(patch.Options) {
		out = append(out, "options")
	}
	return out
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
