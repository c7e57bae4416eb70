package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/render/shape"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Name identifies the terminal fill renderer in a registry.
const Name = "tui"

// NoneChoice is offered for optional radio groups so they can be left empty.
const NoneChoice = "(none)"

// MsgFillRequired is shown before empty required fields are prompted again.
const MsgFillRequired = "Please fill all required fields"

// Renderer fills a form from the terminal: it prompts once per control and
// serializes the collected values. It implements render.Renderer.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	prefill      url.Values
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render collects values for doc and serializes them. Hidden submission
// fields from opts are included verbatim.
func (r *Renderer) Render(ctx context.Context, doc model.Document, opts render.RenderOptions) ([]byte, error) {
	values, err := r.Collect(ctx, doc)
	if err != nil {
		return nil, err
	}
	for _, hidden := range render.SortedHiddenFields(opts.Hidden) {
		values.Set(hidden.Name, hidden.Value)
	}
	return r.serialize(doc, values)
}

// Fill prompts every control of doc once and returns the raw values. It does
// not validate.
func (r *Renderer) Fill(ctx context.Context, doc model.Document) (url.Values, error) {
	if r.driver == nil {
		return nil, ErrNoDriver
	}
	state := NewState(r.prefill)
	for _, field := range doc {
		if err := r.promptField(ctx, field, state); err != nil {
			return nil, err
		}
	}
	return state.Values(), nil
}

// Collect fills doc and re-prompts fields whose required control stayed
// empty. After the configured attempts it returns the last values with an
// error wrapping validation.ErrValidationFailed.
func (r *Renderer) Collect(ctx context.Context, doc model.Document) (url.Values, error) {
	values, err := r.Fill(ctx, doc)
	if err != nil {
		return nil, err
	}
	state := NewState(values)
	for attempt := 1; ; attempt++ {
		result := validation.Validate(controls(doc), state.Values())
		if result.Valid {
			return state.Values(), nil
		}
		if attempt >= r.maxAttempts {
			return state.Values(), fmt.Errorf("tui: %w", result.Err())
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+MsgFillRequired); err != nil {
			return nil, err
		}
		for _, id := range result.InvalidIDs {
			field, ok := doc.Find(id)
			if !ok {
				continue
			}
			if err := r.promptField(ctx, field, state); err != nil {
				return nil, err
			}
		}
	}
}

func controls(doc model.Document) *html.Node {
	root := markup.Fragment()
	for _, field := range doc {
		root.AppendChild(shape.Field(field, shape.Options{Mode: shape.Standalone}))
	}
	return root
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, state *State) error {
	name := shape.ControlName(field.ID)
	label := displayLabel(field)

	switch field.Type {
	case model.FieldTypeSubmit:
		return nil
	case model.FieldTypePassword:
		resp, err := r.driver.Password(ctx, InputConfig{Message: label, Default: state.Get(name), Help: field.Placeholder})
		if err != nil {
			return err
		}
		state.Set(name, resp)
	case model.FieldTypeTextarea:
		resp, err := r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: state.Get(name), Help: field.Placeholder})
		if err != nil {
			return err
		}
		state.Set(name, resp)
	case model.FieldTypeRadio:
		return r.promptRadio(ctx, field, name, label, state)
	case model.FieldTypeSelect:
		return r.promptSelect(ctx, field, name, label, state)
	case model.FieldTypeCheckbox:
		return r.promptCheckbox(ctx, field, name, label, state)
	default:
		cfg := InputConfig{Message: label, Default: state.Get(name), Help: field.Placeholder}
		if field.Type == model.FieldTypeNumber {
			cfg.Validator = validateNumber
		}
		resp, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		state.Set(name, resp)
	}
	return nil
}

func (r *Renderer) promptRadio(ctx context.Context, field model.Field, name, label string, state *State) error {
	if len(field.Options) == 0 {
		return nil
	}
	choices := slices.Clone(field.Options)
	if !field.Required {
		choices = append(choices, NoneChoice)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      choices,
		DefaultIndex: indexOf(field.Options, state.Get(name)),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		state.Set(name)
		return nil
	}
	state.Set(name, field.Options[idx])
	return nil
}

func (r *Renderer) promptSelect(ctx context.Context, field model.Field, name, label string, state *State) error {
	choices := append([]string{shape.SelectPrompt}, field.Options...)
	current := 0
	if idx := indexOf(field.Options, state.Get(name)); idx >= 0 {
		current = idx + 1
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      choices,
		DefaultIndex: current,
	})
	if err != nil {
		return err
	}
	if idx <= 0 || idx >= len(choices) {
		state.Set(name)
		return nil
	}
	state.Set(name, field.Options[idx-1])
	return nil
}

func (r *Renderer) promptCheckbox(ctx context.Context, field model.Field, name, label string, state *State) error {
	if len(field.Options) == 0 {
		return nil
	}
	var defaults []int
	for _, value := range state.All(name) {
		if idx := indexOf(field.Options, value); idx >= 0 {
			defaults = append(defaults, idx)
		}
	}
	picked, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  label,
		Options:  field.Options,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	var values []string
	for _, idx := range picked {
		if idx >= 0 && idx < len(field.Options) {
			values = append(values, field.Options[idx])
		}
	}
	state.Set(name, values...)
	return nil
}

func displayLabel(field model.Field) string {
	if field.Required {
		return field.Label + " " + shape.RequiredGlyph
	}
	return field.Label
}

func validateNumber(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func (r *Renderer) serialize(doc model.Document, values url.Values) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		return prettyValues(doc, values), nil
	default:
		payload := make(map[string]any, len(values))
		for key, vals := range values {
			payload[key] = vals[0]
		}
		for _, field := range doc {
			if field.Type != model.FieldTypeCheckbox {
				continue
			}
			name := shape.ControlName(field.ID)
			if vals := values[name]; len(vals) > 0 {
				payload[name] = vals
			} else {
				payload[name] = []string{}
			}
		}
		out, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return out, nil
	}
}

func prettyValues(doc model.Document, values url.Values) []byte {
	var b strings.Builder
	for _, field := range doc {
		if field.Type == model.FieldTypeSubmit {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", field.Label, strings.Join(values[shape.ControlName(field.ID)], ", "))
	}
	return []byte(b.String())
}
