package view

import (
	"io"
)

// Engine is the template rendering contract the render dispatcher relies on.
// Implementations resolve template names relative to their configured views
// root and append their own file extension.
type Engine interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
