package handler

import "net/http"

// HTTPError carries an HTTP status code and a stable machine-readable
// key. The default error handler and errorToDetail translate it into
// the response envelope, so handlers can return wrapped sentinels
// instead of writing status codes by hand.
type HTTPError struct {
	Code int
	Key  string
}

// Error implements the error interface and returns the key.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Common HTTP errors keyed by status code.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)
