// Package binder parses HTTP request bodies into typed values.
//
// The service speaks JSON only, so the package exposes a single
// binder. BindJSON enforces the application/json media type, decodes
// strictly (unknown fields and trailing data are errors), and wraps
// failures with the package sentinels so transport code can map them
// to client errors:
//
//	var req ValidateRequest
//	if err := binder.BindJSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrInvalidJSON) etc.
//	}
package binder
