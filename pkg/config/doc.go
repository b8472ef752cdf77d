// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// the default .env file is loaded once per process (missing files are
// fine), then env.Parse populates any struct with `env` field tags.
// Each configuration type is parsed at most once; later Load calls
// for the same type are served from an in-process cache, so every
// component can load its own config without coordinating.
//
//	type ServerConfig struct {
//	    Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics on failure, for configuration the process cannot
// start without. Failures are wrapped with the package sentinels
// (ErrParsingConfig and friends) and match with errors.Is.
package config
