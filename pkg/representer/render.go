package representer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-represent/pkg/view"
)

// ViewController is the surface RenderAs needs from the controller: a
// template engine scoped to the application's views, the request's default
// format, and the response stream.
type ViewController interface {
	ViewEngine() view.Engine
	DefaultFormat() string
	ResponseWriter() io.Writer
}

// RenderOption customises a single RenderAs call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	format string
	writer io.Writer
}

// WithRenderFormat overrides the output format for this render only.
func WithRenderFormat(format string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.format = format
	}
}

// WithRenderWriter redirects the rendered output away from the controller's
// response writer.
func WithRenderWriter(w io.Writer) RenderOption {
	return func(cfg *renderConfig) {
		cfg.writer = w
	}
}

// RenderAs resolves the template path for viewName, binds the representer
// under the definition's local name, and renders through the controller's
// view engine. Output goes to the controller's response writer (or the
// writer override) and is also returned. Format precedence: render option,
// controller default, definition default.
func (r *Representer) RenderAs(ctx context.Context, viewName string, options ...RenderOption) (string, error) {
	if ctx == nil {
		return "", errors.New("representer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if viewName == "" {
		return "", errors.New("representer: view name is required")
	}

	cfg := renderConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	vc, ok := r.controller.(ViewController)
	if !ok {
		return "", fmt.Errorf("representer: controller %T does not expose a view engine", r.controller)
	}
	engine := vc.ViewEngine()
	if engine == nil {
		return "", errors.New("representer: controller view engine is nil")
	}

	format := cfg.format
	if format == "" {
		format = vc.DefaultFormat()
	}
	if format == "" {
		format = r.def.format
	}

	locals, err := r.Locals()
	if err != nil {
		return "", err
	}

	data := map[string]any{
		r.def.localName: locals,
		"representer":   r,
	}

	name := r.def.TemplatePath(viewName, format)

	writer := cfg.writer
	if writer == nil {
		writer = vc.ResponseWriter()
	}
	if writer != nil {
		return engine.Render(name, data, writer)
	}
	return engine.Render(name, data)
}
