package webctx

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-represent/pkg/representer"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts a representer handler for pattern under basePath.
func RegisterRoutes(mux Mux, basePath, pattern string, def *representer.Definition, resolve ModelResolver, fns ...OptionFn) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("webctx: missing mux")
	}
	if def == nil {
		return "", fmt.Errorf("webctx: missing definition")
	}
	if resolve == nil {
		return "", fmt.Errorf("webctx: missing model resolver")
	}

	opts := NewOptions(fns...)
	mounted := mountPath(basePath, pattern)
	mux.Handle(mounted, HandlerWithOptions(def, resolve, opts))
	return mounted, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
