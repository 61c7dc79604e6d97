// Package redis provides helpers for connecting to a Redis server.
//
// It wraps the go-redis client with a retrying Connect, env-driven
// configuration and a health probe. The resulting client plugs directly
// into session.NewRedisStore for distributed session storage.
//
// Usage:
//
//	var cfg redis.Config
//	if err := env.Parse(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
package redis
