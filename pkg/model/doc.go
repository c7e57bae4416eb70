// Package model defines the field document the builder edits. Fields are
// created from palette tokens by the factory (NewField), kept in insertion
// order by Model, and mutated only through Model's methods. The closed
// FieldType enumeration decides default labels, whether an option list
// applies (radio, checkbox, select) and which control a renderer emits;
// unknown tokens are tolerated and take each consumer's fallback arm.
// Implementations live in internal/model; this package re-exports them.
package model
