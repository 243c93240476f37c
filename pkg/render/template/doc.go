// Package template defines the template engine seam renderers depend on so
// the built-in pongo2 engine can be swapped for another implementation.
package template
