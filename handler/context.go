package handler

import (
	"context"
	"net/http"
	"time"
)

// Context is passed to handler functions and exposes the underlying
// request and response writer while acting as a standard
// context.Context for deadlines and cancellation.
type Context interface {
	context.Context

	// Request returns the original HTTP request.
	Request() *http.Request

	// ResponseWriter returns the response writer for the request.
	ResponseWriter() http.ResponseWriter
}

// NewContext creates the default Context implementation for the
// request/response pair. Wrap uses it unless a custom context factory
// is configured.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// context.Context is implemented by delegating to the request context,
// so values and cancellation installed by middleware remain visible.

func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
