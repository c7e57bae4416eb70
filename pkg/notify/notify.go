// Package notify carries user-facing acknowledgements: notices posted by the
// orchestrator and the confirmation prompt asked before destructive events.
package notify

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is how long a transient notice stays visible.
const DefaultTTL = 3 * time.Second

// Level classifies a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is one acknowledgement. Transient notices dismiss themselves after
// the center's TTL; the others stay until dismissed.
type Notice struct {
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	Transient bool   `json:"transient,omitempty"`
}

// Notifier receives notices.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Answer returns a Confirmer that always gives the same answer.
func Answer(yes bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) { return yes, nil })
}

type Option func(*Center)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithListener registers fn to observe every change of the visible notice.
// visible is false when the notice was dismissed.
func WithListener(fn func(n Notice, visible bool)) Option {
	return func(c *Center) {
		if fn != nil {
			c.listeners = append(c.listeners, fn)
		}
	}
}

// Center holds the single visible notice. Posting a transient notice equal
// to the visible one restarts its dismiss timer instead of stacking a copy.
type Center struct {
	mu        sync.Mutex
	ttl       time.Duration
	current   *Notice
	timer     *time.Timer
	gen       uint64
	history   []Notice
	listeners []func(Notice, bool)
}

var _ Notifier = (*Center)(nil)

// NewCenter returns an empty center.
func NewCenter(opts ...Option) *Center {
	c := &Center{ttl: DefaultTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Notify makes n the visible notice.
func (c *Center) Notify(n Notice) {
	c.mu.Lock()

	restart := c.current != nil && *c.current == n
	if !restart {
		c.history = append(c.history, n)
	}
	c.stopTimerLocked()
	notice := n
	c.current = &notice
	c.gen++
	if n.Transient {
		gen := c.gen
		c.timer = time.AfterFunc(c.ttl, func() { c.expire(gen) })
	}
	listeners := c.listeners
	c.mu.Unlock()

	if !restart {
		for _, fn := range listeners {
			fn(n, true)
		}
	}
}

// Current returns the visible notice.
func (c *Center) Current() (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notice{}, false
	}
	return *c.current, true
}

// Dismiss hides the visible notice.
func (c *Center) Dismiss() {
	c.mu.Lock()
	c.dismissLocked()
}

// dismissLocked clears the visible notice, releases the lock and then informs
// listeners.
func (c *Center) dismissLocked() {
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	dismissed := *c.current
	c.stopTimerLocked()
	c.current = nil
	c.gen++
	listeners := c.listeners
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(dismissed, false)
	}
}

// History returns every distinct notice posted, oldest first.
func (c *Center) History() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notice(nil), c.history...)
}

func (c *Center) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.dismissLocked()
}

func (c *Center) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
