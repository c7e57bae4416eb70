package tui

import (
	"maps"
	"net/url"
	"slices"
)

// State tracks collected values keyed by control name. It is intentionally
// small; prompting lives in the renderer.
type State struct {
	values url.Values
}

// NewState seeds the state with prefilled values.
func NewState(prefill url.Values) *State {
	values := url.Values{}
	for key, vals := range prefill {
		values[key] = slices.Clone(vals)
	}
	return &State{values: values}
}

// Get returns the first value for name.
func (s *State) Get(name string) string {
	if s == nil {
		return ""
	}
	return s.values.Get(name)
}

// All returns every value recorded for name.
func (s *State) All(name string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.values[name])
}

// Set replaces the values for name. An empty value list, or a single empty
// string, removes the key so the control reads as unfilled.
func (s *State) Set(name string, values ...string) {
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		s.values.Del(name)
		return
	}
	s.values[name] = slices.Clone(values)
}

// Values returns a copy of the collected values.
func (s *State) Values() url.Values {
	if s == nil {
		return url.Values{}
	}
	out := make(url.Values, len(s.values))
	for key, vals := range s.values {
		out[key] = slices.Clone(vals)
	}
	return out
}

// Names lists the filled control names in sorted order.
func (s *State) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}
