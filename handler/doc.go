// Package handler provides type-safe HTTP handlers over plain
// net/http.
//
// A HandlerFunc receives a Context and a typed request value and
// returns a Response. Wrap converts it into an http.HandlerFunc,
// running the configured binder to populate the request value and the
// error handler when binding or rendering fails:
//
//	create := handler.HandlerFunc[handler.Context, ValidateRequest](
//		func(ctx handler.Context, req ValidateRequest) handler.Response {
//			res := validate(req)
//			return handler.JSON(res)
//		},
//	)
//
//	mux.Post("/validate", handler.Wrap(create,
//		handler.WithBinder[handler.Context, ValidateRequest](binder.BindJSON()),
//	))
//
// Responses render themselves; JSON and JSONError build the standard
// envelope with data, meta, and error sections. HTTPError values map
// errors to status codes, and the Decorator type wraps handlers with
// cross-cutting behavior such as logging or metrics.
package handler
