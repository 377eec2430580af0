package filters

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	ugcPolicyOnce    sync.Once
	ugcPolicy        *bluemonday.Policy
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// Builtin returns a registry preloaded with the standard filter set:
//
//	h          HTML-escape the value
//	textilize  render markup text to HTML
//	sanitize   strip unsafe markup, keeping user-generated-content tags
//	strip_tags remove all markup
//	trim       trim surrounding whitespace
//	downcase   lowercase the value
//	upcase     uppercase the value
func Builtin() *Registry {
	registry := NewRegistry()
	registry.MustRegister("h", EscapeHTML)
	registry.MustRegister("textilize", Textilize)
	registry.MustRegister("sanitize", Sanitize)
	registry.MustRegister("strip_tags", StripTags)
	registry.MustRegister("trim", Trim)
	registry.MustRegister("downcase", Downcase)
	registry.MustRegister("upcase", Upcase)
	return registry
}

// EscapeHTML escapes special characters so the value renders as text.
func EscapeHTML(value any) (any, error) {
	return html.EscapeString(stringValue(value)), nil
}

// Textilize renders markup text into HTML.
func Textilize(value any) (any, error) {
	source := stringValue(value)
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("filters: textilize: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Sanitize removes unsafe markup while keeping the formatting tags allowed
// for user generated content.
func Sanitize(value any) (any, error) {
	return ugcSanitizer().Sanitize(stringValue(value)), nil
}

// StripTags removes all markup from the value.
func StripTags(value any) (any, error) {
	return strictSanitizer().Sanitize(stringValue(value)), nil
}

// Trim removes surrounding whitespace.
func Trim(value any) (any, error) {
	return strings.TrimSpace(stringValue(value)), nil
}

// Downcase lowercases the value.
func Downcase(value any) (any, error) {
	return strings.ToLower(stringValue(value)), nil
}

// Upcase uppercases the value.
func Upcase(value any) (any, error) {
	return strings.ToUpper(stringValue(value)), nil
}

func ugcSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

func strictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
