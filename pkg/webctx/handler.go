package webctx

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goliatone/go-represent/pkg/representer"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// ModelResolver produces the model a request should be rendered with.
// Returning a StatusError controls the response status; any other error maps
// to 500.
type ModelResolver func(r *http.Request) (any, error)

// Handler builds a net/http handler that resolves the request's model,
// wraps it in a representer, and renders the configured view. Output is
// buffered so failures produce a clean error response instead of a partial
// body.
func Handler(def *representer.Definition, resolve ModelResolver, fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(def, resolve, opts)
}

// HandlerWithOptions builds the handler from a pre-constructed Options value.
func HandlerWithOptions(def *representer.Definition, resolve ModelResolver, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if def == nil || resolve == nil || opts.Engine == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		model, err := resolve(r)
		if err != nil {
			writeError(w, err)
			return
		}

		controller := NewController(w, r, func(o *Options) { *o = opts })
		rep, err := representer.New(def, model, controller)
		if err != nil {
			writeError(w, err)
			return
		}

		var buf bytes.Buffer
		if _, err := rep.RenderAs(r.Context(), opts.View, representer.WithRenderWriter(&buf)); err != nil {
			controller.Logger().Printf("webctx: render %s: %v", opts.View, err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", contentTypeFor(opts.DefaultFormat))
		_, _ = buf.WriteTo(w)
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode()
	}
	http.Error(w, http.StatusText(status), status)
}

func contentTypeFor(format string) string {
	switch format {
	case "", "html":
		return "text/html; charset=utf-8"
	case "json":
		return "application/json"
	case "txt", "text":
		return "text/plain; charset=utf-8"
	case "xml":
		return "application/xml"
	default:
		return "text/html; charset=utf-8"
	}
}
