// Package markup holds the intermediate tree both renderers build and the
// single writer that serialises it. Nodes are golang.org/x/net/html nodes so
// the writer escapes text and attribute values in one place; renderers never
// concatenate markup strings.
package markup
