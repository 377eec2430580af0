package representer

import (
	"path"
	"strings"
	"unicode"
)

// TemplateDir returns the directory templates for this definition live in,
// derived from the definition name unless overridden: each "."-separated
// segment is underscored and lowercased, so "representers.Book" maps to
// "representers/book".
func (d *Definition) TemplateDir() string {
	return d.dir
}

// TemplatePath resolves a view name to a template path. A view name that
// already contains a path separator is used verbatim; otherwise it is joined
// onto the definition's template directory. A non-empty format is appended as
// a suffix, giving the engine "<dir>/<view>.<format>" to complete with its
// own extension.
func (d *Definition) TemplatePath(view, format string) string {
	view = strings.TrimSpace(view)

	resolved := view
	if !strings.Contains(view, "/") {
		resolved = path.Join(d.dir, view)
	}

	if format != "" {
		resolved += "." + format
	}
	return resolved
}

func templateDir(name string) string {
	segments := splitName(name)
	for i, segment := range segments {
		segments[i] = underscore(segment)
	}
	return path.Join(segments...)
}

func localName(name string) string {
	segments := splitName(name)
	if len(segments) == 0 {
		return ""
	}
	return underscore(segments[len(segments)-1])
}

func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '.' || r == ':' || r == '/'
	})
}

// underscore converts CamelCase to snake_case, keeping initialism runs
// together ("HTMLPage" becomes "html_page").
func underscore(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
