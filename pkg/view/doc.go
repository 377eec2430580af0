// Package view defines the engine-agnostic template rendering seam that
// representers dispatch through, plus the view configuration loader. The
// pongo subpackage provides the default pongo2-backed implementation.
package view
