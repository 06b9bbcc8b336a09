// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// A .env file is loaded automatically on first use; parsing is handled by the
// caarlos0/env library.
//
// Basic usage:
//
//	type GeoConfig struct {
//		Timeout  time.Duration `env:"GEO_PROVIDER_TIMEOUT" envDefault:"3s"`
//		CacheTTL time.Duration `env:"GEO_CACHE_TTL" envDefault:"24h"`
//	}
//
//	func main() {
//		var cfg GeoConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 GeoConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GeoConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so every package can expose its
// own Config struct without coordinating load order. Tests that mutate the
// environment between loads reset the cache with ResetCache.
package config
