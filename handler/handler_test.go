package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseJunior1001/API-Validacao-Dados/handler"
)

// Mock response for testing
type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	w.Write([]byte(m.body))
	return nil
}

func TestWrap(t *testing.T) {
	t.Run("basic handler without options", func(t *testing.T) {
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			assert.NotNil(t, ctx)
			assert.Equal(t, "", req) // zero value
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("handler with render error", func(t *testing.T) {
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "render failed")
	})

	t.Run("handler returns nil response", func(t *testing.T) {
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return nil
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "handler returned nil response")
	})

	t.Run("binder populates request", func(t *testing.T) {
		type testRequest struct {
			Name string
		}

		bind := handler.Bind(func(r *http.Request, v any) error {
			if req, ok := v.(*testRequest); ok {
				req.Name = "bound value"
			}
			return nil
		})

		h := handler.HandlerFunc[handler.Context, testRequest](func(ctx handler.Context, req testRequest) handler.Response {
			assert.Equal(t, "bound value", req.Name)
			return mockResponse{statusCode: http.StatusOK, body: req.Name}
		})

		wrapped := handler.Wrap(h, handler.WithBinder[handler.Context, testRequest](bind))

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bound value", rec.Body.String())
	})

	t.Run("binder error with custom error handler", func(t *testing.T) {
		binderErr := errors.New("binding failed")
		errorHandlerCalled := false

		bind := handler.Bind(func(r *http.Request, v any) error {
			return binderErr
		})

		errorHandler := func(ctx handler.Context, err error) {
			errorHandlerCalled = true
			assert.Equal(t, binderErr, err)
			ctx.ResponseWriter().WriteHeader(http.StatusBadRequest)
			ctx.ResponseWriter().Write([]byte("custom error: " + err.Error()))
		}

		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			t.Fatal("handler should not be called on bind error")
			return nil
		})

		wrapped := handler.Wrap(h,
			handler.WithBinder[handler.Context, string](bind),
			handler.WithErrorHandler[handler.Context, string](errorHandler),
		)

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.True(t, errorHandlerCalled)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "custom error: binding failed", rec.Body.String())
	})

	t.Run("with nil options", func(t *testing.T) {
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: "ok"}
		})

		wrapped := handler.Wrap(h,
			handler.WithBinder[handler.Context, string](nil),
			handler.WithErrorHandler[handler.Context, string](nil),
			handler.WithContextFactory[handler.Context, string](nil),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		require.NotPanics(t, func() {
			wrapped(rec, req)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("render error is HTTPError", func(t *testing.T) {
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: handler.ErrNotFound}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("render error is wrapped HTTPError", func(t *testing.T) {
		wrappedErr := fmt.Errorf("lookup failed: %w", handler.ErrBadRequest)

		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: wrappedErr}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
	})

	t.Run("decorators applied first to outermost", func(t *testing.T) {
		var order []string

		decorator := func(name string) handler.Decorator[handler.Context, string] {
			return func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
				return func(ctx handler.Context, req string) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			order = append(order, "handler")
			return mockResponse{statusCode: http.StatusOK, body: "ok"}
		})

		wrapped := handler.Wrap(h,
			handler.WithDecorators(decorator("outer"), decorator("inner")),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// Custom context for testing
type customContext interface {
	handler.Context
	TenantID() string
}

type testCustomContext struct {
	handler.Context
	tenantID string
}

func (c *testCustomContext) TenantID() string {
	return c.tenantID
}

func newTestCustomContext(w http.ResponseWriter, r *http.Request) customContext {
	return &testCustomContext{
		Context:  handler.NewContext(w, r),
		tenantID: "tenant-123",
	}
}

func TestWrapWithCustomContext(t *testing.T) {
	t.Run("handler with custom context", func(t *testing.T) {
		h := handler.HandlerFunc[customContext, string](func(ctx customContext, req string) handler.Response {
			assert.Equal(t, "tenant-123", ctx.TenantID())
			return mockResponse{statusCode: http.StatusOK, body: ctx.TenantID()}
		})

		wrapped := handler.Wrap(h,
			handler.WithContextFactory[customContext, string](newTestCustomContext),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tenant-123", rec.Body.String())
	})

	t.Run("custom context without factory panics", func(t *testing.T) {
		h := handler.HandlerFunc[customContext, string](func(ctx customContext, req string) handler.Response {
			t.Fatal("handler should not be called")
			return nil
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		assert.Panics(t, func() {
			wrapped(rec, req)
		}, "should panic when custom context is used without factory")
	})
}
