package orchestrator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/delivery"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithModel supplies the field model the orchestrator owns.
func WithModel(m *model.Model) Option {
	return func(o *Orchestrator) {
		if m != nil {
			o.model = m
		}
	}
}

// WithStore injects the persistent store used by Save and Load.
func WithStore(store storage.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithStorageKey overrides storage.DefaultKey.
func WithStorageKey(key string) Option {
	return func(o *Orchestrator) {
		if key != "" {
			o.key = key
		}
	}
}

// WithSink sets the sink exports are delivered to when the caller passes nil.
func WithSink(sink delivery.Sink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithRegistry injects a renderer registry. It must contain renderers named
// canvas.Name and standalone.Name.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithNotifier receives every notice the orchestrator posts.
func WithNotifier(notifier notify.Notifier) Option {
	return func(o *Orchestrator) {
		o.notifier = notifier
	}
}

// WithConfirmer answers the clear confirmation prompt when Clear is called
// without its own confirmer.
func WithConfirmer(confirmer notify.Confirmer) Option {
	return func(o *Orchestrator) {
		o.confirmer = confirmer
	}
}

// WithEditor supplies the property dialog used when an edit binding is
// dispatched.
func WithEditor(editor Editor) Option {
	return func(o *Orchestrator) {
		o.editor = editor
	}
}

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThemeSelector resolves the theme applied to standalone exports.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(o *Orchestrator) {
		o.selector = selector
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithExportOptions sets the render options (title, action, hidden fields)
// used for standalone exports.
func WithExportOptions(opts render.RenderOptions) Option {
	return func(o *Orchestrator) {
		o.exportOptions = opts
	}
}
