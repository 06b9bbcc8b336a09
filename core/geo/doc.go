// Package geo resolves a visitor's country through an ordered chain of
// external IP-geolocation providers.
//
// Each provider call is bounded by its own timeout (3s by default) and any
// failure, malformed payload, or non-2xx status silently advances the chain
// to the next provider. The first provider returning a well-formed two-letter
// code short-circuits the rest. When every provider fails the chain falls
// back to the client's Accept-Language tag: a region subtag ("pt-BR") is used
// directly, a bare base language maps through a default-country table, and as
// a last resort the fixed default "US" is returned. DetectCountry therefore
// never fails and always terminates within the sum of per-provider timeouts.
//
// An optional Redis-backed cache keyed by client IP skips the provider
// round-trip for repeat visitors:
//
//	chain := geo.New(
//		geo.WithTimeout(3*time.Second),
//		geo.WithCache(geo.NewRedisCache(rdb, 24*time.Hour)),
//	)
//	country := chain.DetectCountry(ctx, clientIP, r.Header.Get("Accept-Language"))
package geo
