package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/codec"
	"github.com/goliatone/go-formbuilder/pkg/delivery"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/markup"
	"github.com/goliatone/go-formbuilder/pkg/renderers/canvas"
	"github.com/goliatone/go-formbuilder/pkg/renderers/standalone"
	"github.com/goliatone/go-formbuilder/pkg/storage"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// User-facing acknowledgement texts.
const (
	MsgSaved        = "Form saved successfully!"
	MsgLoaded       = "Form loaded successfully!"
	MsgNoSavedForm  = "No saved form found"
	MsgUnreadable   = "Saved form could not be read"
	MsgConfirmClear = "Are you sure you want to clear the form?"
	MsgSubmitted    = "Form submitted successfully!"
	MsgFillRequired = "Please fill all required fields"
)

// Editor is the property dialog: it presents a field and returns the edited
// values. ok is false when the user cancelled.
type Editor interface {
	EditField(ctx context.Context, field model.Field) (patch model.Patch, ok bool, err error)
}

// Submission is the outcome of a submit event. View is the canvas the
// values were validated against, with validation marks applied.
type Submission struct {
	Result validation.Result
	View   canvas.View
}

// Orchestrator owns one field model and routes builder events to it.
type Orchestrator struct {
	mu sync.Mutex

	model         *model.Model
	store         storage.Store
	key           string
	sink          delivery.Sink
	registry      *render.Registry
	notifier      notify.Notifier
	confirmer     notify.Confirmer
	editor        Editor
	logger        *zap.Logger
	selector      theme.ThemeSelector
	themeName     string
	themeVariant  string
	exportOptions render.RenderOptions
	initialiseErr error
}

// New constructs an Orchestrator. Missing collaborators get in-memory
// defaults: an empty model, a memory store, a memory sink, a registry with
// the canvas and standalone renderers and a notice center.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{key: storage.DefaultKey}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.model == nil {
		o.model = model.New()
	}
	if o.store == nil {
		o.store = storage.NewMemoryStore()
	}
	if o.sink == nil {
		o.sink = &delivery.MemorySink{}
	}
	if o.notifier == nil {
		o.notifier = notify.NewCenter()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry(canvas.New())
		renderer, err := standalone.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
}

// Err reports a failure to initialise default collaborators.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

func (o *Orchestrator) notice(level notify.Level, message string, transient bool) {
	o.notifier.Notify(notify.Notice{Level: level, Message: message, Transient: transient})
}

// Drop creates a field for a palette token and appends it. Unknown tokens
// still produce a field with the fallback label.
func (o *Orchestrator) Drop(ctx context.Context, token string) (model.Field, error) {
	if err := ctx.Err(); err != nil {
		return model.Field{}, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := model.ParseFieldType(token); err != nil {
		o.logger.Warn("unknown field type dropped", zap.String("token", token))
	}
	field := o.model.NewField(token)
	if err := o.model.Append(field); err != nil {
		return model.Field{}, fmt.Errorf("orchestrator: drop: %w", err)
	}
	o.logger.Debug("field dropped", zap.Int("id", field.ID), zap.String("type", string(field.Type)))
	return field, nil
}

// Edit applies patch to field id. It reports false when the field is gone.
func (o *Orchestrator) Edit(ctx context.Context, id int, patch model.Patch) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.model.UpdateByID(id, patch) {
		o.logger.Debug("edit ignored", zap.Int("id", id), zap.Error(model.ErrFieldNotFound))
		return false, nil
	}
	o.logger.Debug("field edited", zap.Int("id", id))
	return true, nil
}

// Delete removes field id. It reports false when the field is gone.
func (o *Orchestrator) Delete(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.model.DeleteByID(id) {
		o.logger.Debug("delete ignored", zap.Int("id", id), zap.Error(model.ErrFieldNotFound))
		return false, nil
	}
	o.logger.Debug("field deleted", zap.Int("id", id))
	return true, nil
}

// Clear empties the form after confirmation. confirmer overrides the
// configured one; with neither the form is left untouched.
func (o *Orchestrator) Clear(ctx context.Context, confirmer notify.Confirmer) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if confirmer == nil {
		confirmer = o.confirmer
	}
	if confirmer == nil {
		o.logger.Debug("clear skipped: no confirmer")
		return false, nil
	}

	yes, err := confirmer.Confirm(ctx, MsgConfirmClear)
	if err != nil {
		return false, fmt.Errorf("orchestrator: confirm clear: %w", err)
	}
	if !yes {
		return false, nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.model.Clear()
	o.logger.Debug("form cleared")
	return true, nil
}

// Save writes the structural document to the store under the configured key.
func (o *Orchestrator) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := codec.EncodeStructural(o.model.Fields())
	if err != nil {
		return fmt.Errorf("orchestrator: save: %w", err)
	}
	if err := o.store.Put(ctx, o.key, data); err != nil {
		return fmt.Errorf("orchestrator: save: %w", err)
	}
	o.logger.Info("form saved", zap.String("key", o.key), zap.Int("fields", o.model.Len()))
	o.notice(notify.LevelSuccess, MsgSaved, false)
	return nil
}

// Load replaces the form with the saved document. It reports whether the
// form was replaced; a missing or unreadable document leaves it untouched and
// posts a notice.
func (o *Orchestrator) Load(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := o.store.Get(ctx, o.key)
	if errors.Is(err, storage.ErrNotFound) {
		o.notice(notify.LevelInfo, MsgNoSavedForm, false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("orchestrator: load: %w", err)
	}

	doc, err := codec.DecodeStructural(data)
	if err == nil {
		err = o.model.ReplaceAll(doc)
	}
	if err != nil {
		o.logger.Warn("saved form rejected", zap.String("key", o.key), zap.Error(err))
		o.notice(notify.LevelError, MsgUnreadable, false)
		return false, nil
	}

	o.logger.Info("form loaded", zap.String("key", o.key), zap.Int("fields", len(doc)))
	o.notice(notify.LevelSuccess, MsgLoaded, false)
	return true, nil
}

// ExportJSON delivers the indented structural document. A nil sink uses the
// configured one.
func (o *Orchestrator) ExportJSON(ctx context.Context, sink delivery.Sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := codec.EncodeStructuralIndent(o.model.Fields())
	if err != nil {
		return fmt.Errorf("orchestrator: export json: %w", err)
	}
	return o.deliver(ctx, sink, codec.StructuralFileName, data)
}

// ExportYAML delivers the structural document as YAML.
func (o *Orchestrator) ExportYAML(ctx context.Context, sink delivery.Sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := codec.EncodeYAML(o.model.Fields())
	if err != nil {
		return fmt.Errorf("orchestrator: export yaml: %w", err)
	}
	return o.deliver(ctx, sink, codec.YAMLFileName, data)
}

// ExportHTML delivers the standalone page.
func (o *Orchestrator) ExportHTML(ctx context.Context, sink delivery.Sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := o.renderStandaloneLocked(ctx)
	if err != nil {
		return err
	}
	return o.deliver(ctx, sink, codec.MarkupFileName, data)
}

// Standalone returns the standalone page without delivering it.
func (o *Orchestrator) Standalone(ctx context.Context) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.renderStandaloneLocked(ctx)
}

func (o *Orchestrator) renderStandaloneLocked(ctx context.Context) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}
	renderer, err := o.registry.Get(standalone.Name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: export html: %w", err)
	}

	opts := o.exportOptions
	if o.selector != nil && opts.Theme == nil {
		selection, err := o.selector.Select(o.themeName, o.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: select theme: %w", err)
		}
		opts.Theme = standalone.RendererConfig(selection)
	}

	data, err := codec.EncodeStandaloneMarkup(ctx, o.model.Fields(), renderer, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: export html: %w", err)
	}
	return data, nil
}

func (o *Orchestrator) deliver(ctx context.Context, sink delivery.Sink, name string, data []byte) error {
	if sink == nil {
		sink = o.sink
	}
	if err := sink.Deliver(ctx, name, data); err != nil {
		return fmt.Errorf("orchestrator: deliver %s: %w", name, err)
	}
	o.logger.Info("export delivered", zap.String("file", name), zap.Int("bytes", len(data)))
	return nil
}

// Canvas renders the current document as an interactive view.
func (o *Orchestrator) Canvas() canvas.View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return canvas.Build(o.model.Fields())
}

// CanvasHTML renders the current document through the registered canvas
// renderer.
func (o *Orchestrator) CanvasHTML(ctx context.Context) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.registry.Render(ctx, canvas.Name, o.model.Fields(), render.RenderOptions{})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render canvas: %w", err)
	}
	return out, nil
}

// Submit validates values against a freshly rendered canvas. A valid
// submission posts a transient success notice; an invalid one posts a
// blocking notice and leaves the form untouched.
func (o *Orchestrator) Submit(ctx context.Context, values validation.Values) (Submission, error) {
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	view := canvas.Build(o.model.Fields())
	result := validation.Validate(view.Root, values)
	if !result.Valid {
		o.logger.Debug("submit rejected", zap.Ints("invalid_ids", result.InvalidIDs))
		o.notice(notify.LevelError, MsgFillRequired, false)
		return Submission{Result: result, View: view}, nil
	}
	o.notice(notify.LevelSuccess, MsgSubmitted, true)
	return Submission{Result: result, View: view}, nil
}

// Dispatch routes a canvas binding. Edit bindings open the configured editor;
// values are only read by submit bindings.
func (o *Orchestrator) Dispatch(ctx context.Context, binding markup.Binding, values validation.Values) error {
	switch binding.Action {
	case markup.ActionEdit:
		return o.editWithDialog(ctx, binding.FieldID)
	case markup.ActionDelete:
		_, err := o.Delete(ctx, binding.FieldID)
		return err
	case markup.ActionSubmit:
		_, err := o.Submit(ctx, values)
		return err
	default:
		return fmt.Errorf("orchestrator: unknown action %q", binding.Action)
	}
}

func (o *Orchestrator) editWithDialog(ctx context.Context, id int) error {
	if o.editor == nil {
		return errors.New("orchestrator: no editor configured")
	}
	field, ok := o.Field(id)
	if !ok {
		o.logger.Debug("edit ignored", zap.Int("id", id), zap.Error(model.ErrFieldNotFound))
		return nil
	}
	patch, ok, err := o.editor.EditField(ctx, field)
	if err != nil {
		return fmt.Errorf("orchestrator: edit dialog: %w", err)
	}
	if !ok {
		return nil
	}
	_, err = o.Edit(ctx, id, patch)
	return err
}

// Document returns a copy of the current document.
func (o *Orchestrator) Document() model.Document {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.model.Fields()
}

// Field returns a copy of field id.
func (o *Orchestrator) Field(id int) (model.Field, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.model.Field(id)
}
