// Package config loads application configuration from environment variables
// into annotated structs, with per-type caching.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: LoadEnv
// reads .env files into the process environment, Load parses the environment
// into any struct using `env` field tags and caches the result so every
// component sharing a config type sees identical values.
//
// # Usage
//
//	var dbCfg pg.Config
//	if err := config.Load(&dbCfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	var sessCfg session.Config
//	config.MustLoad(&sessCfg)
//
// Tests that mutate the environment can call ResetCache to force a reload.
package config
