package validation

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JoseJunior1001/API-Validacao-Dados/binder"
	"github.com/JoseJunior1001/API-Validacao-Dados/handler"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/logger"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/metrics"
)

// Batch requests must carry between minBatchItems and maxBatchItems
// entries. The bound lives here; the engine itself is uncapped.
const (
	minBatchItems = 1
	maxBatchItems = 100
)

// Service wires the validation engine to its HTTP surface.
type Service struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewService creates the HTTP service. Both arguments may be nil:
// logging falls back to a discard handler and metrics recording
// becomes a no-op.
func NewService(log *slog.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		log:     log.With(logger.Component("validation")),
		metrics: m,
	}
}

// Handle returns the module router. Mount it under the API prefix:
//
//	r.Mount("/api/v1", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Use(securityHeaders)
	r.Use(requestLogger(s.log))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinder[handler.Context, ValidateRequest](binder.BindJSON()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
		handler.WithDecorators(instrument[ValidateRequest](s.metrics, "validate")),
	))

	r.Post("/detect", handler.Wrap(s.detect,
		handler.WithBinder[handler.Context, DetectRequest](binder.BindJSON()),
		handler.WithErrorHandler[handler.Context, DetectRequest](s.errorHandler),
		handler.WithDecorators(instrument[DetectRequest](s.metrics, "detect")),
	))

	r.Post("/validate/batch", handler.Wrap(s.validateBatch,
		handler.WithBinder[handler.Context, BatchRequest](binder.BindJSON()),
		handler.WithErrorHandler[handler.Context, BatchRequest](s.errorHandler),
		handler.WithDecorators(instrument[BatchRequest](s.metrics, "batch")),
	))

	return r
}

// errorHandler renders binder and render failures as JSON envelopes.
// Every binder failure is a client fault and maps to 400; anything
// else is a server-side 500.
func (s *Service) errorHandler(ctx handler.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		status = http.StatusBadRequest
		code = "invalid_request"
		s.log.InfoContext(ctx, "request rejected", logger.Error(err))
	default:
		s.log.ErrorContext(ctx, "request failed", logger.Error(err))
	}

	resp := handler.JSONError(
		&handler.ErrorDetail{Code: code, Message: err.Error()},
		handler.WithJSONStatus(status),
	)
	if rerr := resp.Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
		s.log.ErrorContext(ctx, "error response render failed", logger.Error(rerr))
	}
}

// instrument records request latency for one operation.
func instrument[R any](m *metrics.Metrics, operation string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			m.ObserveRequestDuration(operation, time.Since(start))
			return resp
		}
	}
}
