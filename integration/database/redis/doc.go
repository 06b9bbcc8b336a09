// Package redis provides Redis client initialization for the geolocation
// result cache.
//
// Connect validates the connection URL, establishes a client with exponential
// backoff retries, and verifies connectivity with a ping before handing the
// client out. Both redis:// and rediss:// (TLS) schemes are accepted.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	chain := geo.New(geo.WithCache(geo.NewRedisCache(client, 24*time.Hour)))
//
// Healthcheck returns a probe function for readiness endpoints, and the
// package sentinels (ErrRedisNotReady, ErrHealthcheckFailed, ...) give stable
// errors.Is() targets over the raw client errors.
package redis
