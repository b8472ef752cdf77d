package handler

import "errors"

// ErrNilResponse is passed to the error handler when a handler
// function returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")
