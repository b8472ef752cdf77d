// Package logger builds configured slog loggers with automatic
// context attribute injection.
//
// New applies functional options over production-safe defaults (JSON
// output, info level) and wraps the handler with a decorator that
// pulls request-scoped attributes out of the context on every log
// call:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "validacao-api"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "value validated", logger.DataType("cpf"))
//
// The attr helpers keep log keys consistent across the codebase; use
// them instead of raw slog.String calls for shared keys.
package logger
