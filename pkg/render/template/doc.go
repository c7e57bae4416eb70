// Package template defines the template engine seam page renderers use to
// wrap generated markup in a document shell. The pongo2-backed engine lives
// in the gotemplate subpackage.
package template
