// Package represent exposes the representer toolkit through a single import:
// definitions pairing models with filtered readers and controller
// delegation, a pongo2-backed view engine, and convenience entry points for
// rendering a model straight to its conventional template.
package represent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-represent/pkg/filters"
	"github.com/goliatone/go-represent/pkg/representer"
	"github.com/goliatone/go-represent/pkg/view"
	"github.com/goliatone/go-represent/pkg/view/pongo"
)

// Definition is the compiled registration table for one representer type.
type Definition = representer.Definition

// Representer pairs a model with the active controller for a single render.
type Representer = representer.Representer

// RecordRepresenter adds identifier and DOM id delegation for record-backed
// models.
type RecordRepresenter = representer.RecordRepresenter

// Record is a persisted model with a stable identifier.
type Record = representer.Record

// Option customises a definition.
type Option = representer.Option

// RenderOption customises a single render call.
type RenderOption = representer.RenderOption

// ViewConfig describes where templates live and how rendered views default.
type ViewConfig = view.Config

// Definition and render options, re-exported for single-import users.
var (
	WithReaders           = representer.WithReaders
	WithFilteredReader    = representer.WithFilteredReader
	WithControllerMethods = representer.WithControllerMethods
	WithHelpers           = representer.WithHelpers
	WithFilters           = representer.WithFilters
	WithTemplateDir       = representer.WithTemplateDir
	WithFormat            = representer.WithFormat
	WithLocalName         = representer.WithLocalName

	WithRenderFormat = representer.WithRenderFormat
	WithRenderWriter = representer.WithRenderWriter
)

// Define compiles a representer definition, resolving filter chains by name.
func Define(name string, options ...Option) (*Definition, error) {
	return representer.Define(name, options...)
}

// MustDefine panics on definition failure. Useful for package-level wiring.
func MustDefine(name string, options ...Option) *Definition {
	return representer.MustDefine(name, options...)
}

// New builds a representer for model within ctx.
func New(def *Definition, model, ctx any) (*Representer, error) {
	return representer.New(def, model, ctx)
}

// NewRecord builds a representer for a record-backed model.
func NewRecord(def *Definition, model Record, ctx any) (*RecordRepresenter, error) {
	return representer.NewRecord(def, model, ctx)
}

// BuiltinFilters returns a registry preloaded with the standard filter set.
func BuiltinFilters() *filters.Registry {
	return filters.Builtin()
}

// NewEngine builds the default pongo2 view engine from a view configuration.
// Templates load from fsys when provided, otherwise from cfg.Root on disk.
// Every filter in registry (the builtin set when nil) is exposed to
// templates under its registered name.
func NewEngine(cfg view.Config, fsys fs.FS, registry *filters.Registry) (view.Engine, error) {
	cfg = cfg.Normalize()

	options := []pongo.Option{pongo.WithExtension(cfg.Extension)}
	switch {
	case fsys != nil:
		options = append(options, pongo.WithFS(fsys))
	case cfg.Root != "":
		options = append(options, pongo.WithBaseDir(cfg.Root))
	default:
		return nil, errors.New("represent: view config needs a template source")
	}
	if len(cfg.Globals) > 0 {
		options = append(options, pongo.WithGlobalData(cfg.Globals))
	}

	engine, err := pongo.New(options...)
	if err != nil {
		return nil, fmt.Errorf("represent: configure view engine: %w", err)
	}

	if registry == nil {
		registry = filters.Builtin()
	}
	for _, name := range registry.List() {
		filter, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		fn := filter
		if err := engine.EnsureFilter(name, func(input any, _ any) (any, error) {
			return fn(input)
		}); err != nil {
			return nil, fmt.Errorf("represent: expose filter %q: %w", name, err)
		}
	}

	return engine, nil
}

// Render is the one-call entry point: it builds a representer for model
// within ctx and renders the named view through the controller's engine.
func Render(renderCtx context.Context, def *Definition, model, ctx any, viewName string, options ...RenderOption) (string, error) {
	rep, err := representer.New(def, model, ctx)
	if err != nil {
		return "", err
	}
	return rep.RenderAs(renderCtx, viewName, options...)
}
