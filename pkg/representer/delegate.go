package representer

import (
	"errors"
	"fmt"
	"reflect"
)

// Call forwards a declared controller method with identical arguments and
// returns its result unchanged. Methods returning (T, error) surface the
// error separately; methods with no results return nil. Undeclared names are
// rejected, missing controller methods fail here at call time.
func (r *Representer) Call(name string, args ...any) (any, error) {
	if !r.def.HasControllerMethod(name) {
		return nil, fmt.Errorf("representer: controller method %q is not declared", name)
	}
	if r.controller == nil {
		return nil, errors.New("representer: controller is nil")
	}
	return invokeMethod(r.controller, name, args)
}

// Delegate returns the generated forwarding closure for a declared controller
// method, bound to this representer's controller.
func (r *Representer) Delegate(name string) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		return r.Call(name, args...)
	}
}

func invokeMethod(target any, name string, args []any) (any, error) {
	rv := reflect.ValueOf(target)

	var method reflect.Value
	for _, candidate := range exportedNames(name) {
		if m, ok := lookupMethod(rv, candidate); ok {
			method = m
			break
		}
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("representer: controller %T has no method %q", target, name)
	}

	in, err := methodArguments(method.Type(), name, args)
	if err != nil {
		return nil, err
	}

	results := method.Call(in)
	return splitResults(results)
}

func methodArguments(mt reflect.Type, name string, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("representer: method %q wants at least %d arguments, got %d", name, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("representer: method %q wants %d arguments, got %d", name, fixed, len(args))
	}

	in := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		paramType := mt.In(min(i, mt.NumIn()-1))
		if mt.IsVariadic() && i >= fixed {
			paramType = mt.In(mt.NumIn() - 1).Elem()
		}
		if arg == nil {
			in = append(in, reflect.Zero(paramType))
			continue
		}
		in = append(in, reflect.ValueOf(arg))
	}
	return in, nil
}

func splitResults(results []reflect.Value) (any, error) {
	if len(results) == 0 {
		return nil, nil
	}

	last := results[len(results)-1]
	if last.Type().Implements(errorType) {
		var err error
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		if len(results) == 1 {
			return nil, err
		}
		return results[0].Interface(), err
	}

	return results[0].Interface(), nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
