// Package dialog implements the field property dialog on top of a terminal
// prompt driver.
package dialog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

// Prompt texts shown by the dialog.
const (
	PromptLabel       = "Label"
	PromptPlaceholder = "Placeholder"
	PromptRequired    = "Required"
	PromptOptions     = "Options (one per line)"
	PromptCommit      = "Save changes?"
)

// Dialog edits one field at a time. It implements orchestrator.Editor.
type Dialog struct {
	driver tui.PromptDriver
	logger *zap.Logger
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithLogger sets the logger used to flag markup in committed text.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dialog) {
		if logger != nil {
			d.logger = logger
		}
	}
}

var _ orchestrator.Editor = (*Dialog)(nil)

// New returns a dialog prompting through driver.
func New(driver tui.PromptDriver, opts ...Option) *Dialog {
	d := &Dialog{driver: driver, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// EditField prefills the prompts from field and returns the entered values
// unchanged.
// ok is false when the user declines to commit.
func (d *Dialog) EditField(ctx context.Context, field model.Field) (model.Patch, bool, error) {
	if d.driver == nil {
		return model.Patch{}, false, tui.ErrNoDriver
	}

	label, err := d.driver.Input(ctx, tui.InputConfig{Message: PromptLabel, Default: field.Label})
	if err != nil {
		return model.Patch{}, false, fmt.Errorf("dialog: label: %w", err)
	}
	placeholder, err := d.driver.Input(ctx, tui.InputConfig{Message: PromptPlaceholder, Default: field.Placeholder})
	if err != nil {
		return model.Patch{}, false, fmt.Errorf("dialog: placeholder: %w", err)
	}
	required, err := d.driver.Confirm(ctx, tui.ConfirmConfig{Message: PromptRequired, Default: field.Required})
	if err != nil {
		return model.Patch{}, false, fmt.Errorf("dialog: required: %w", err)
	}

	patch := model.Patch{
		Label:       label,
		Placeholder: placeholder,
		Required:    required,
		Options:     model.FormatOptions(field.Options),
	}
	if field.Type.HasOptions() {
		patch.Options, err = d.driver.TextArea(ctx, tui.TextAreaConfig{
			Message: PromptOptions,
			Default: model.FormatOptions(field.Options),
		})
		if err != nil {
			return model.Patch{}, false, fmt.Errorf("dialog: options: %w", err)
		}
	}

	commit, err := d.driver.Confirm(ctx, tui.ConfirmConfig{Message: PromptCommit, Default: true})
	if err != nil {
		return model.Patch{}, false, fmt.Errorf("dialog: commit: %w", err)
	}
	if !commit {
		return model.Patch{}, false, nil
	}
	if attrs := markupAttributes(patch); len(attrs) > 0 {
		d.logger.Warn("field text contains markup, stored as plain text",
			zap.Int("id", field.ID), zap.Strings("attributes", attrs))
	}
	return patch, true, nil
}

// Confirm asks a yes/no question. It satisfies notify.Confirmer so the same
// driver can guard Clear.
func (d *Dialog) Confirm(ctx context.Context, prompt string) (bool, error) {
	if d.driver == nil {
		return false, tui.ErrNoDriver
	}
	return d.driver.Confirm(ctx, tui.ConfirmConfig{Message: prompt})
}
