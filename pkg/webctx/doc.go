// Package webctx glues representers to net/http: a Controller implementation
// backed by the active request/response pair, plus a handler and route
// registration helpers that resolve a model, build the representer, and
// render the conventional view for the request.
package webctx
