// Package sanitizer provides small, focused helpers for cleaning and
// normalising the raw strings the validation engine inspects.
//
// The functions are grouped conceptually into several areas:
//
//   - Digits – extraction of decimal digits from arbitrary input and
//     detection of degenerate repeated-digit runs.
//
//   - Strings – trimming, case folding and whitespace normalisation.
//
//   - Format – canonical display renderings for Brazilian document numbers
//     (CPF, CNPJ, CEP, phone numbers) and masking of sensitive values.
//
// The package is completely stateless and depends only on the Go standard
// library. All helpers are small pure functions that can be freely combined;
// the higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	canon := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	email := canon("  User@Example.COM ") // "user@example.com"
//
// None of the helpers returns an error – they always fall back to a safe
// result (usually the original input or an empty string). Because there is no
// global state the helpers are safe for concurrent use.
package sanitizer
