// Package orchestrator routes builder events (drop, edit, delete, clear,
// save, load, export, submit) to the field model, renderers, validation,
// storage and delivery, and turns their outcomes into user notices.
//
// Events run one at a time: every method takes the orchestrator lock, so a
// single instance can back concurrent HTTP handlers.
package orchestrator
