package webctx

import (
	"log"
	"net/http"

	"github.com/goliatone/go-represent/pkg/view"
)

// UserLookup resolves the authenticated principal for a request. Returning
// nil means the request is anonymous.
type UserLookup func(r *http.Request) any

type Options struct {
	Engine        view.Engine
	DefaultFormat string
	View          string
	UserLookup    UserLookup
	Logger        *log.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		DefaultFormat: "html",
		View:          "show",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = "html"
	}
	if opts.View == "" {
		opts.View = "show"
	}
	return opts
}

func WithEngine(engine view.Engine) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Engine = engine
	}
}

func WithDefaultFormat(format string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultFormat = format
	}
}

func WithView(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.View = name
	}
}

func WithUserLookup(lookup UserLookup) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.UserLookup = lookup
	}
}

func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
