package testsupport

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

// ErrScriptExhausted is returned when a ScriptedDriver runs out of answers.
var ErrScriptExhausted = errors.New("testsupport: no scripted answer left")

// ScriptedDriver is a tui.PromptDriver that replays answers in order. Each
// answer must match the prompt kind: string for Input, Password and TextArea,
// bool for Confirm, int for Select, []int for MultiSelect. An error answer is
// returned as the prompt's error.
type ScriptedDriver struct {
	mu      sync.Mutex
	answers []any
	prompts []string
	infos   []string
}

var _ tui.PromptDriver = (*ScriptedDriver)(nil)

// NewScriptedDriver returns a driver replaying answers.
func NewScriptedDriver(answers ...any) *ScriptedDriver {
	return &ScriptedDriver{answers: answers}
}

// Prompts lists the messages prompted so far.
func (d *ScriptedDriver) Prompts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.prompts...)
}

// Infos lists the informational messages printed so far.
func (d *ScriptedDriver) Infos() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.infos...)
}

// Remaining reports how many answers have not been consumed.
func (d *ScriptedDriver) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.answers)
}

func (d *ScriptedDriver) next(ctx context.Context, message string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prompts = append(d.prompts, message)
	if len(d.answers) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrScriptExhausted, message)
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	if err, ok := answer.(error); ok {
		return nil, err
	}
	return answer, nil
}

func scripted[T any](d *ScriptedDriver, ctx context.Context, message string) (T, error) {
	var zero T
	answer, err := d.next(ctx, message)
	if err != nil {
		return zero, err
	}
	value, ok := answer.(T)
	if !ok {
		return zero, fmt.Errorf("testsupport: answer for %q is %T, want %T", message, answer, zero)
	}
	return value, nil
}

func (d *ScriptedDriver) Input(ctx context.Context, cfg tui.InputConfig) (string, error) {
	return scripted[string](d, ctx, cfg.Message)
}

func (d *ScriptedDriver) Password(ctx context.Context, cfg tui.InputConfig) (string, error) {
	return scripted[string](d, ctx, cfg.Message)
}

func (d *ScriptedDriver) Confirm(ctx context.Context, cfg tui.ConfirmConfig) (bool, error) {
	return scripted[bool](d, ctx, cfg.Message)
}

func (d *ScriptedDriver) Select(ctx context.Context, cfg tui.SelectConfig) (int, error) {
	return scripted[int](d, ctx, cfg.Message)
}

func (d *ScriptedDriver) MultiSelect(ctx context.Context, cfg tui.SelectConfig) ([]int, error) {
	return scripted[[]int](d, ctx, cfg.Message)
}

func (d *ScriptedDriver) TextArea(ctx context.Context, cfg tui.TextAreaConfig) (string, error) {
	return scripted[string](d, ctx, cfg.Message)
}

func (d *ScriptedDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.infos = append(d.infos, msg)
	return nil
}
