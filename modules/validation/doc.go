// Package validation exposes the validation engine over HTTP.
//
// Handle returns a router with three JSON endpoints, meant to be
// mounted under the API prefix:
//
//	POST /validate        validate a value as a declared type
//	POST /detect          classify a value by trying every known type
//	POST /validate/batch  validate 1 to 100 values concurrently
//
// Validation outcomes render as 200 responses whether the value passed
// or not; a failed check is a domain result, not a transport fault.
// Only malformed requests map to 400: broken JSON, unknown type tags,
// values of no recognizable type on /detect, and out-of-bounds batches.
package validation
