package router

import (
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/hashui/pkg/core"
	"github.com/vango-dev/hashui/pkg/telemetry"
)

// RootPath is the fallback route.
const RootPath = "/"

// Handler is a route handler.
type Handler func()

// Router holds the route table of one application.
type Router struct {
	ctx     *core.Context
	logger  *slog.Logger
	routes  map[string]Handler
	order   []string
	current string
}

// New creates an empty Router for ctx.
func New(ctx *core.Context) *Router {
	return &Router{
		ctx:    ctx,
		logger: ctx.Component("router"),
		routes: make(map[string]Handler),
	}
}

// AddRoute registers handler for path. It returns false when path is empty,
// handler is nil or path is already registered; the first registration
// wins.
func (r *Router) AddRoute(path string, handler Handler) bool {
	switch {
	case path == "":
		r.logger.Warn("route rejected", "reason", "empty path")
		return false
	case handler == nil:
		r.logger.Warn("route rejected", "path", path, "reason", "nil handler")
		return false
	}
	if _, exists := r.routes[path]; exists {
		r.logger.Warn("route rejected", "path", path, "reason", "duplicate")
		return false
	}
	r.routes[path] = handler
	r.order = append(r.order, path)
	return true
}

// ExecuteRoute dispatches url, which may be a bare path, a fragment such as
// "#/active" or a full URL whose fragment is used. Unknown paths dispatch
// RootPath. It reports whether a handler ran.
func (r *Router) ExecuteRoute(url string) bool {
	path := PathOf(url)
	result := telemetry.RouteMatched

	handler, ok := r.routes[path]
	if !ok {
		path = RootPath
		handler, ok = r.routes[path]
		result = telemetry.RouteFallback
	}

	_, span := r.ctx.Telemetry.Start(r.ctx.Base, "hashui.route",
		attribute.String("url", url),
		attribute.String("path", path),
	)
	defer span.End()

	if !ok {
		r.logger.Warn("no route handler", "url", url)
		r.ctx.Metrics().RecordRoute(telemetry.RouteUnhandled, false)
		span.SetAttributes(attribute.String("result", telemetry.RouteUnhandled))
		return false
	}

	handler()
	r.current = path

	pushed := false
	if fragment := "#" + path; fragment != r.ctx.Host.Hash() {
		r.ctx.Host.PushHash(fragment)
		pushed = true
	}
	r.ctx.Metrics().RecordRoute(result, pushed)
	span.SetAttributes(
		attribute.String("result", result),
		attribute.Bool("pushed", pushed),
	)
	r.logger.Debug("route dispatched", "path", path, "result", result, "pushed", pushed)
	return true
}

// PathOf returns the route path named by url: the text after the first
// fragment marker, or url itself when it has none.
func PathOf(url string) string {
	if _, fragment, found := strings.Cut(url, "#"); found {
		return fragment
	}
	return url
}

// Has reports whether path is registered.
func (r *Router) Has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Routes returns the registered paths in registration order.
func (r *Router) Routes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Current returns the path of the last dispatch, or "" before the first.
func (r *Router) Current() string {
	return r.current
}
