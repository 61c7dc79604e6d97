// Package pg provides PostgreSQL connection helpers built on pgx.
//
// It covers the plumbing every Postgres-backed component needs: a Connect
// function with retry and startup ping, env-driven pool configuration, a
// health probe and error classification helpers for unique-key and
// not-found conditions.
//
// Usage:
//
//	var cfg pg.Config
//	if err := env.Parse(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
// The pool plugs directly into credstore.NewPostgresStorage.
package pg
