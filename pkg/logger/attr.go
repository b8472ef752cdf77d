package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// DataType records the data type tag of a validation or detection
// under the key "type".
func DataType(typ string) slog.Attr {
	return slog.String("type", typ)
}

// Outcome records whether a value passed validation under the key
// "valid".
func Outcome(valid bool) slog.Attr {
	return slog.Bool("valid", valid)
}

// ErrorCode records a validation failure code under the key
// "error_code".
func ErrorCode(code string) slog.Attr {
	return slog.String("error_code", code)
}

// BatchSize records the number of items in a batch under the key
// "batch_size".
func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}
