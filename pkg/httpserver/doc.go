// Package httpserver wraps http.Server with option-based
// configuration, graceful shutdown, and lifecycle hooks.
//
// Run blocks until the context is canceled, SIGINT or SIGTERM
// arrives, or the listener fails, then drains in-flight requests
// within the shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(log *slog.Logger) {
//			log.Info("listening", slog.String("addr", cfg.Addr))
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes for the
// same wiring.
package httpserver
