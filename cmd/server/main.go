package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JoseJunior1001/API-Validacao-Dados/modules/validation"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/config"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/httpserver"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/logger"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/metrics"
	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/requestid"
)

const serviceName = "api-validacao-dados"

type appConfig struct {
	Env      string     `env:"APP_ENV" envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, serviceName),
		logger.WithLevel(appCfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	m := metrics.New()
	svc := validation.NewService(log, m)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Mount("/api/v1", svc.Handle())

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
