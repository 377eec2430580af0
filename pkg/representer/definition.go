package representer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-represent/pkg/filters"
)

const defaultFormat = "html"

// Option customises a definition before its reader chains are compiled.
type Option func(*config)

type config struct {
	readers   []readerSpec
	methods   []string
	helpers   map[string]any
	registry  *filters.Registry
	dir       string
	format    string
	localName string
}

type readerSpec struct {
	name    string
	filters []string
}

// WithReaders declares plain model readers: each name becomes an accessor
// that delegates to the matching model attribute unchanged.
func WithReaders(names ...string) Option {
	return func(cfg *config) {
		for _, name := range names {
			cfg.readers = append(cfg.readers, readerSpec{name: strings.TrimSpace(name)})
		}
	}
}

// WithFilteredReader declares a reader whose value is piped through the named
// filters before it is returned. Filters compose right-to-left: the last name
// is applied to the raw attribute first and the first name produces the final
// value.
func WithFilteredReader(name string, filterNames ...string) Option {
	return func(cfg *config) {
		cfg.readers = append(cfg.readers, readerSpec{
			name:    strings.TrimSpace(name),
			filters: append([]string(nil), filterNames...),
		})
	}
}

// WithControllerMethods declares the controller methods the representer
// forwards. Calls to undeclared names are rejected.
func WithControllerMethods(names ...string) Option {
	return func(cfg *config) {
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				cfg.methods = append(cfg.methods, trimmed)
			}
		}
	}
}

// WithHelpers exposes named values or functions to templates alongside the
// declared readers.
func WithHelpers(helpers map[string]any) Option {
	return func(cfg *config) {
		if len(helpers) == 0 {
			return
		}
		if cfg.helpers == nil {
			cfg.helpers = make(map[string]any, len(helpers))
		}
		for name, helper := range helpers {
			cfg.helpers[strings.TrimSpace(name)] = helper
		}
	}
}

// WithFilters resolves reader chains against the supplied registry instead of
// the built-in one.
func WithFilters(registry *filters.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTemplateDir overrides the template directory derived from the
// definition name.
func WithTemplateDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.Trim(strings.TrimSpace(dir), "/")
	}
}

// WithFormat overrides the definition's default render format ("html").
func WithFormat(format string) Option {
	return func(cfg *config) {
		cfg.format = strings.TrimSpace(format)
	}
}

// WithLocalName overrides the template local variable the representer is
// bound to, which defaults to the underscored final segment of the
// definition name.
func WithLocalName(name string) Option {
	return func(cfg *config) {
		cfg.localName = strings.TrimSpace(name)
	}
}

type reader struct {
	attr  string
	chain filters.Chain
}

// Definition is the compiled registration table for one representer type. It
// is immutable once built and safe to share across requests.
type Definition struct {
	name      string
	readers   map[string]reader
	order     []string
	methods   map[string]struct{}
	helpers   map[string]any
	dir       string
	format    string
	localName string
}

// Define compiles a definition. The name is the qualified representer name
// using "." separators (e.g. "representers.Book"); it drives the default
// template directory and local variable. Reader chains are resolved against
// the filter registry here, so an unknown filter name fails Define rather
// than the first render.
func Define(name string, options ...Option) (*Definition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("representer: definition name is required")
	}

	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	registry := cfg.registry
	if registry == nil {
		registry = filters.Builtin()
	}

	def := &Definition{
		name:      name,
		readers:   make(map[string]reader, len(cfg.readers)),
		methods:   make(map[string]struct{}, len(cfg.methods)),
		helpers:   cfg.helpers,
		dir:       cfg.dir,
		format:    cfg.format,
		localName: cfg.localName,
	}

	for _, spec := range cfg.readers {
		if spec.name == "" {
			return nil, errors.New("representer: reader name is required")
		}
		if _, exists := def.readers[spec.name]; exists {
			return nil, fmt.Errorf("representer: reader %q declared twice", spec.name)
		}
		chain, err := registry.Chain(spec.filters...)
		if err != nil {
			return nil, fmt.Errorf("representer: reader %q: %w", spec.name, err)
		}
		def.readers[spec.name] = reader{attr: spec.name, chain: chain}
		def.order = append(def.order, spec.name)
	}

	for _, method := range cfg.methods {
		def.methods[method] = struct{}{}
	}

	if def.dir == "" {
		def.dir = templateDir(name)
	}
	if def.format == "" {
		def.format = defaultFormat
	}
	if def.localName == "" {
		def.localName = localName(name)
	}

	return def, nil
}

// MustDefine panics on definition failure. Useful for package-level wiring.
func MustDefine(name string, options ...Option) *Definition {
	def, err := Define(name, options...)
	if err != nil {
		panic(err)
	}
	return def
}

// Name returns the qualified definition name.
func (d *Definition) Name() string { return d.name }

// Format returns the definition's default render format.
func (d *Definition) Format() string { return d.format }

// LocalName returns the template local variable name.
func (d *Definition) LocalName() string { return d.localName }

// HasReader reports whether name was declared as a model reader.
func (d *Definition) HasReader(name string) bool {
	_, ok := d.readers[name]
	return ok
}

// HasControllerMethod reports whether name was declared for delegation.
func (d *Definition) HasControllerMethod(name string) bool {
	_, ok := d.methods[name]
	return ok
}

// Readers returns the declared reader names in declaration order.
func (d *Definition) Readers() []string {
	return append([]string(nil), d.order...)
}

// ControllerMethods returns the declared controller method names sorted.
func (d *Definition) ControllerMethods() []string {
	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
