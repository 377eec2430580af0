package webctx

import (
	"io"
	"log"
	"net/http"

	"github.com/goliatone/go-represent/pkg/view"
)

// Controller adapts an active net/http exchange into the surface representers
// delegate to: the view engine, the response stream, and the request-scoped
// helpers (current user, logging) that definitions declare via
// controller-method delegation. One controller exists per request.
type Controller struct {
	w    http.ResponseWriter
	r    *http.Request
	opts Options
}

// NewController wraps a response/request pair. The zero options render with
// format "html" and no authenticated user.
func NewController(w http.ResponseWriter, r *http.Request, fns ...OptionFn) *Controller {
	return &Controller{
		w:    w,
		r:    r,
		opts: NewOptions(fns...),
	}
}

// ViewEngine returns the template engine configured for this request.
func (c *Controller) ViewEngine() view.Engine {
	return c.opts.Engine
}

// DefaultFormat returns the request's render format.
func (c *Controller) DefaultFormat() string {
	return c.opts.DefaultFormat
}

// ResponseWriter exposes the response stream renders are written to.
func (c *Controller) ResponseWriter() io.Writer {
	return c.w
}

// Request returns the wrapped request.
func (c *Controller) Request() *http.Request {
	return c.r
}

// CurrentUser resolves the authenticated principal via the configured
// lookup, nil when anonymous or no lookup is configured.
func (c *Controller) CurrentUser() any {
	if c.opts.UserLookup == nil || c.r == nil {
		return nil
	}
	return c.opts.UserLookup(c.r)
}

// LoggedIn reports whether the request carries an authenticated principal.
func (c *Controller) LoggedIn() bool {
	return c.CurrentUser() != nil
}

// Param returns a query or form parameter from the request.
func (c *Controller) Param(name string) string {
	if c.r == nil {
		return ""
	}
	return c.r.FormValue(name)
}

// Logger returns the request logger, defaulting to the process logger.
func (c *Controller) Logger() *log.Logger {
	if c.opts.Logger != nil {
		return c.opts.Logger
	}
	return log.Default()
}
