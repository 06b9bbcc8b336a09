package geo

import (
	"strings"
	"time"
)

// Config provides environment-based configuration for the lookup chain.
// Providers are specified as comma-separated "endpoint|field" entries; an
// empty value keeps the built-in list.
type Config struct {
	Timeout   time.Duration `env:"GEO_PROVIDER_TIMEOUT" envDefault:"3s"`
	CacheTTL  time.Duration `env:"GEO_CACHE_TTL" envDefault:"24h"`
	Providers string        `env:"GEO_PROVIDERS" envDefault:""`
}

// parseProviders splits the comma-separated provider spec.
// Entries without a field name are dropped.
func (c Config) parseProviders() []Provider {
	if c.Providers == "" {
		return nil
	}

	parts := strings.Split(c.Providers, ",")
	providers := make([]Provider, 0, len(parts))

	for _, part := range parts {
		endpoint, field, ok := strings.Cut(strings.TrimSpace(part), "|")
		if !ok {
			continue
		}
		endpoint = strings.TrimSpace(endpoint)
		field = strings.TrimSpace(field)
		if endpoint == "" || field == "" {
			continue
		}
		providers = append(providers, Provider{Endpoint: endpoint, CountryField: field})
	}

	return providers
}

// NewFromConfig creates a chain from configuration.
func NewFromConfig(cfg Config, opts ...Option) *Chain {
	configOpts := make([]Option, 0, len(opts)+2)

	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if providers := cfg.parseProviders(); len(providers) > 0 {
		configOpts = append(configOpts, WithProviders(providers...))
	}

	// User-provided options override config.
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
