package representer

import (
	"errors"
	"fmt"
)

// ControllerProvider is implemented by contexts that expose the active
// controller rather than being one, e.g. a view context. New unwraps the
// provider and stores the controller it returns.
type ControllerProvider interface {
	Controller() any
}

// Representer pairs a model with the active request controller for a single
// render. It holds read-only references to both and is immutable after
// construction; create one per model/context pair and discard it after the
// view finishes.
type Representer struct {
	def        *Definition
	model      any
	controller any
}

// New builds a representer for model within ctx. The context is either the
// controller itself or something exposing one through ControllerProvider, in
// which case the nested controller is extracted.
func New(def *Definition, model, ctx any) (*Representer, error) {
	if def == nil {
		return nil, errors.New("representer: definition is required")
	}
	if model == nil {
		return nil, errors.New("representer: model is required")
	}
	if ctx == nil {
		return nil, errors.New("representer: context is required")
	}

	return &Representer{
		def:        def,
		model:      model,
		controller: extractController(ctx),
	}, nil
}

func extractController(ctx any) any {
	if provider, ok := ctx.(ControllerProvider); ok {
		if controller := provider.Controller(); controller != nil {
			return controller
		}
	}
	return ctx
}

// Definition returns the compiled definition backing this representer.
func (r *Representer) Definition() *Definition { return r.def }

// Model returns the referenced model.
func (r *Representer) Model() any { return r.model }

// Controller returns the extracted controller reference.
func (r *Representer) Controller() any { return r.controller }

// Get reads a declared model attribute, piping the raw value through the
// reader's filter chain. Undeclared readers and missing model attributes
// surface as errors at call time.
func (r *Representer) Get(name string) (any, error) {
	rd, ok := r.def.readers[name]
	if !ok {
		return nil, fmt.Errorf("representer: reader %q is not declared", name)
	}

	raw, err := attributeValue(r.model, rd.attr)
	if err != nil {
		return nil, err
	}
	return rd.chain.Apply(raw)
}

// Locals evaluates every declared reader and returns the template binding:
// helper values first, then reader values, then bound controller-method
// closures. Reader evaluation errors abort the render rather than binding a
// partial context.
func (r *Representer) Locals() (map[string]any, error) {
	locals := make(map[string]any, len(r.def.readers)+len(r.def.helpers)+len(r.def.methods))

	for name, helper := range r.def.helpers {
		locals[name] = helper
	}

	for name := range r.def.readers {
		value, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		locals[name] = value
	}

	for name := range r.def.methods {
		locals[name] = r.Delegate(name)
	}

	return locals, nil
}
