package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/render/shape"
)

// Styles groups the lipgloss styles used by the terminal session.
type Styles struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Field    lipgloss.Style
	Meta     lipgloss.Style
	Required lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles mirrors the export palette in the terminal.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#667eea")).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea")),
		Field:    lipgloss.NewStyle().Bold(true),
		Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa")),
		Required: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Muted:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#999999")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#667eea")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000")),
	}
}

// Outline draws the canvas as a framed list, one entry per field in document
// order.
func Outline(title string, doc model.Document, styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")

	if len(doc) == 0 {
		sb.WriteString(styles.Muted.Render(shape.EmptyMessage))
		return styles.Frame.Render(sb.String())
	}

	for i, field := range doc {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styles.Meta.Render(fmt.Sprintf("#%d", field.ID)))
		sb.WriteString(" ")
		sb.WriteString(styles.Field.Render(field.Label))
		if field.Required {
			sb.WriteString(" ")
			sb.WriteString(styles.Required.Render(shape.RequiredGlyph))
		}
		sb.WriteString(" ")
		sb.WriteString(styles.Meta.Render("(" + string(field.Type) + ")"))
		if field.Type.HasOptions() && len(field.Options) > 0 {
			sb.WriteString("\n")
			sb.WriteString(styles.Meta.Render("    " + strings.Join(field.Options, " | ")))
		}
	}
	return styles.Frame.Render(sb.String())
}

// NoticeLine renders a notice with the style of its level.
func NoticeLine(n notify.Notice, styles Styles) string {
	switch n.Level {
	case notify.LevelSuccess:
		return styles.Success.Render("✓ " + n.Message)
	case notify.LevelError:
		return styles.Error.Render("✗ " + n.Message)
	default:
		return styles.Info.Render("• " + n.Message)
	}
}
