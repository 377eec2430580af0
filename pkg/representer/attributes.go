package representer

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// AttributeReader lets models take over attribute lookup instead of relying
// on reflection. Useful for models backed by maps or dynamic records.
type AttributeReader interface {
	Attribute(name string) (any, error)
}

// attributeValue reads a named attribute from model. Lookup order: the
// AttributeReader interface, a map key, a zero-argument exported method, then
// an exported struct field. Attribute names are declared in snake_case and
// mapped onto Go exported names.
func attributeValue(model any, name string) (any, error) {
	if model == nil {
		return nil, fmt.Errorf("representer: model is nil, cannot read %q", name)
	}

	if reader, ok := model.(AttributeReader); ok {
		return reader.Attribute(name)
	}

	if m, ok := model.(map[string]any); ok {
		value, exists := m[name]
		if !exists {
			return nil, fmt.Errorf("representer: model map has no attribute %q", name)
		}
		return value, nil
	}

	rv := reflect.ValueOf(model)
	for _, candidate := range exportedNames(name) {
		if method, ok := lookupMethod(rv, candidate); ok {
			return callAttributeMethod(method, name)
		}
	}

	elem := rv
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, fmt.Errorf("representer: model %T is nil, cannot read %q", model, name)
		}
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		for _, candidate := range exportedNames(name) {
			field := elem.FieldByName(candidate)
			if field.IsValid() && field.CanInterface() {
				return field.Interface(), nil
			}
		}
	}

	return nil, fmt.Errorf("representer: model %T has no attribute %q", model, name)
}

// lookupMethod finds an exported method on the value or, when the value was
// passed by value, on an addressable copy so pointer-receiver methods are
// still visible.
func lookupMethod(rv reflect.Value, name string) (reflect.Value, bool) {
	if method := rv.MethodByName(name); method.IsValid() {
		return method, true
	}
	if rv.Kind() != reflect.Pointer && rv.IsValid() {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if method := ptr.MethodByName(name); method.IsValid() {
			return method, true
		}
	}
	return reflect.Value{}, false
}

func callAttributeMethod(method reflect.Value, name string) (any, error) {
	mt := method.Type()
	if mt.NumIn() != 0 {
		return nil, fmt.Errorf("representer: attribute method %q takes arguments", name)
	}

	results := method.Call(nil)
	switch len(results) {
	case 1:
		return results[0].Interface(), nil
	case 2:
		if err, ok := results[1].Interface().(error); ok {
			if err != nil {
				return nil, err
			}
			return results[0].Interface(), nil
		}
		return nil, fmt.Errorf("representer: attribute method %q has unsupported signature", name)
	default:
		return nil, fmt.Errorf("representer: attribute method %q has unsupported signature", name)
	}
}

var initialisms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"uri":  "URI",
	"api":  "API",
	"html": "HTML",
	"http": "HTTP",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"uuid": "UUID",
	"dom":  "DOM",
}

// exportedNames maps a snake_case attribute name onto candidate Go exported
// names: the plain camel form first, then a variant with common initialisms
// uppercased ("dom_id" tries "DomId" and "DOMID").
func exportedNames(name string) []string {
	parts := strings.Split(strings.TrimSpace(name), "_")

	plain := make([]string, 0, len(parts))
	upper := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		plain = append(plain, capitalize(part))
		if replacement, ok := initialisms[strings.ToLower(part)]; ok {
			upper = append(upper, replacement)
		} else {
			upper = append(upper, capitalize(part))
		}
	}

	first := strings.Join(plain, "")
	second := strings.Join(upper, "")
	if second == first {
		return []string{first}
	}
	return []string{first, second}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
