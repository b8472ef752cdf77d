// Package requestid assigns every request an identifier and carries
// it through the context.
//
// Middleware honors an incoming X-Request-ID header when it looks
// sane and generates a UUID otherwise, echoes the value back on the
// response, and stores it in the request context. FromContext reads
// it anywhere downstream, and LoggerExtractor plugs it into the
// logger package so each log record carries the request it belongs
// to.
package requestid
