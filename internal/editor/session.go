// Package editor runs the terminal builder session: a palette and action menu
// driving one orchestrator, with an outline of the canvas between events.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/codec"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

// Action is one entry of the session menu.
type Action string

const (
	ActionAdd        Action = "Add field"
	ActionEdit       Action = "Edit field"
	ActionDelete     Action = "Delete field"
	ActionFill       Action = "Fill and submit"
	ActionSave       Action = "Save"
	ActionLoad       Action = "Load"
	ActionClear      Action = "Clear"
	ActionExportJSON Action = "Export JSON"
	ActionExportYAML Action = "Export YAML"
	ActionExportHTML Action = "Export HTML"
	ActionQuit       Action = "Quit"
)

// Actions lists the menu in display order.
func Actions() []Action {
	return []Action{
		ActionAdd, ActionEdit, ActionDelete, ActionFill,
		ActionSave, ActionLoad, ActionClear,
		ActionExportJSON, ActionExportYAML, ActionExportHTML,
		ActionQuit,
	}
}

const (
	promptAction = "What next?"
	promptType   = "Field type"
	promptField  = "Which field?"
	msgNoFields  = "No fields yet"
	defaultTitle = "Form Builder"
)

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where the outline and messages are written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithStyles overrides DefaultStyles.
func WithStyles(styles Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

// WithTitle sets the outline heading.
func WithTitle(title string) Option {
	return func(s *Session) {
		if title != "" {
			s.title = title
		}
	}
}

// WithFiller overrides the fill renderer used by ActionFill.
func WithFiller(filler *tui.Renderer) Option {
	return func(s *Session) {
		if filler != nil {
			s.filler = filler
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session drives an orchestrator from terminal prompts. The orchestrator
// should be configured with an editor and a confirmer for the edit and clear
// actions to take effect.
type Session struct {
	orch   *orchestrator.Orchestrator
	driver tui.PromptDriver
	filler *tui.Renderer
	out    io.Writer
	styles Styles
	title  string
	logger *zap.Logger
}

// New returns a session prompting through driver.
func New(orch *orchestrator.Orchestrator, driver tui.PromptDriver, opts ...Option) *Session {
	s := &Session{
		orch:   orch,
		driver: driver,
		out:    os.Stdout,
		styles: DefaultStyles(),
		title:  defaultTitle,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.filler == nil {
		s.filler = tui.New(tui.WithPromptDriver(driver))
	}
	return s
}

// NoticePrinter returns a notify.Center listener that prints visible notices
// to w.
func NoticePrinter(w io.Writer, styles Styles) func(notify.Notice, bool) {
	return func(n notify.Notice, visible bool) {
		if !visible {
			return
		}
		fmt.Fprintln(w, NoticeLine(n, styles))
	}
}

// Run loops until the user quits, aborts or ctx is cancelled. An abort ends
// the session without error.
func (s *Session) Run(ctx context.Context) error {
	if s.orch == nil {
		return errors.New("editor: orchestrator is required")
	}
	if s.driver == nil {
		return tui.ErrNoDriver
	}
	actions := Actions()
	options := make([]string, len(actions))
	for i, action := range actions {
		options[i] = string(action)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printOutline()

		idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: promptAction, Options: options})
		if errors.Is(err, tui.ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("editor: menu: %w", err)
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}
		action := actions[idx]
		if action == ActionQuit {
			return nil
		}

		err = s.Do(ctx, action)
		switch {
		case errors.Is(err, tui.ErrAborted):
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.logger.Warn("action failed", zap.String("action", string(action)), zap.Error(err))
			s.info(ctx, s.styles.Error.Render(err.Error()))
		}
	}
}

// Do runs a single menu action.
func (s *Session) Do(ctx context.Context, action Action) error {
	switch action {
	case ActionAdd:
		return s.add(ctx)
	case ActionEdit:
		return s.onField(ctx, markup.ActionEdit)
	case ActionDelete:
		return s.onField(ctx, markup.ActionDelete)
	case ActionFill:
		return s.fill(ctx)
	case ActionSave:
		return s.orch.Save(ctx)
	case ActionLoad:
		_, err := s.orch.Load(ctx)
		return err
	case ActionClear:
		_, err := s.orch.Clear(ctx, nil)
		return err
	case ActionExportJSON:
		return s.exported(ctx, codec.StructuralFileName, s.orch.ExportJSON(ctx, nil))
	case ActionExportYAML:
		return s.exported(ctx, codec.YAMLFileName, s.orch.ExportYAML(ctx, nil))
	case ActionExportHTML:
		return s.exported(ctx, codec.MarkupFileName, s.orch.ExportHTML(ctx, nil))
	case ActionQuit:
		return nil
	default:
		return fmt.Errorf("editor: unknown action %q", action)
	}
}

func (s *Session) add(ctx context.Context) error {
	types := model.FieldTypes()
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = model.DefaultLabel(t)
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: promptType, Options: labels, PageSize: len(labels)})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(types) {
		return nil
	}
	_, err = s.orch.Drop(ctx, string(types[idx]))
	return err
}

func (s *Session) onField(ctx context.Context, action markup.Action) error {
	doc := s.orch.Document()
	if len(doc) == 0 {
		s.info(ctx, s.styles.Muted.Render(msgNoFields))
		return nil
	}
	choices := make([]string, len(doc))
	for i, field := range doc {
		choices[i] = fmt.Sprintf("#%d %s (%s)", field.ID, field.Label, field.Type)
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: promptField, Options: choices})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(doc) {
		return nil
	}
	return s.orch.Dispatch(ctx, markup.Binding{Action: action, FieldID: doc[idx].ID}, nil)
}

func (s *Session) fill(ctx context.Context) error {
	values, err := s.filler.Fill(ctx, s.orch.Document())
	if err != nil {
		return err
	}
	submission, err := s.orch.Submit(ctx, values)
	if err != nil {
		return err
	}
	for _, issue := range submission.Result.Issues {
		if field, ok := s.orch.Field(issue.FieldID); ok {
			s.info(ctx, s.styles.Error.Render(fmt.Sprintf("%s: %s", field.Label, issue.Message)))
		}
	}
	return nil
}

func (s *Session) exported(ctx context.Context, name string, err error) error {
	if err != nil {
		return err
	}
	s.info(ctx, s.styles.Meta.Render("Exported "+name))
	return nil
}

func (s *Session) printOutline() {
	fmt.Fprintln(s.out, Outline(s.title, s.orch.Document(), s.styles))
}

func (s *Session) info(ctx context.Context, msg string) {
	if err := s.driver.Info(ctx, msg); err != nil {
		s.logger.Debug("info message dropped", zap.Error(err))
	}
}
