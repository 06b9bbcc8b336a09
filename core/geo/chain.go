package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/logger"
)

const defaultTimeout = 3 * time.Second

// Chain queries a prioritized list of geolocation providers and degrades to
// Accept-Language parsing, then to the fixed default. DetectCountry never
// fails: the worst case is locale.DefaultCountry.
type Chain struct {
	providers []Provider
	client    *http.Client
	timeout   time.Duration
	cache     Cache
	log       *slog.Logger
}

// Option configures the chain.
type Option func(*Chain)

// WithProviders replaces the default provider list.
func WithProviders(providers ...Provider) Option {
	return func(c *Chain) {
		if len(providers) > 0 {
			c.providers = providers
		}
	}
}

// WithTimeout sets the per-provider call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Chain) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Chain) {
		if client != nil {
			c.client = client
		}
	}
}

// WithCache adds an IP→country cache consulted before any provider call.
func WithCache(cache Cache) Option {
	return func(c *Chain) {
		c.cache = cache
	}
}

// WithLogger sets the logger for provider failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Chain) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a chain with the default providers and a 3s per-call timeout.
func New(opts ...Option) *Chain {
	c := &Chain{
		providers: DefaultProviders(),
		client:    &http.Client{},
		timeout:   defaultTimeout,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DetectCountry resolves a best-effort country for the client behind ip.
// Providers are tried strictly in order; the first well-formed answer wins and
// later providers are never called. When every provider fails the country is
// derived from the Accept-Language header, and finally from the fixed default.
func (c *Chain) DetectCountry(ctx context.Context, ip, acceptLanguage string) locale.CountryCode {
	if c.cache != nil && ip != "" {
		if country, err := c.cache.Get(ctx, ip); err == nil {
			// A cache implementation is not trusted to hand back a
			// well-formed code; a malformed hit is a miss.
			if _, perr := locale.ParseCountry(string(country)); perr == nil {
				return country
			}
		}
	}

	for _, p := range c.providers {
		country, err := c.lookup(ctx, p, ip)
		if err != nil {
			c.log.DebugContext(ctx, "geolocation provider failed",
				logger.Provider(p.Endpoint), logger.Error(err))
			continue
		}
		if c.cache != nil && ip != "" {
			if err := c.cache.Set(ctx, ip, country); err != nil {
				c.log.DebugContext(ctx, "geo cache write failed", logger.Error(err))
			}
		}
		return country
	}

	return CountryFromAcceptLanguage(acceptLanguage)
}

// lookup performs one bounded provider call and validates the response shape.
func (c *Chain) lookup(ctx context.Context, p Provider, ip string) (locale.CountryCode, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(ip), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d", ErrProviderStatus, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	raw, ok := payload[p.CountryField].(string)
	if !ok || len(raw) != 2 {
		return "", fmt.Errorf("%w: field %q", ErrMalformedResponse, p.CountryField)
	}

	country, err := locale.ParseCountry(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return country, nil
}

// CountryFromAcceptLanguage derives a country from the client's language tag.
// A two-letter region subtag ("pt-BR") wins; otherwise the base language maps
// through the detection default-country table; otherwise the fixed default.
func CountryFromAcceptLanguage(header string) locale.CountryCode {
	tag := firstLanguageTag(header)
	if tag == "" {
		return locale.DefaultCountry
	}

	parts := strings.Split(tag, "-")
	if len(parts) > 1 && len(parts[1]) == 2 {
		if country, err := locale.ParseCountry(parts[1]); err == nil {
			return country
		}
	}

	if country, ok := detectionCountry[locale.LanguageCode(strings.ToLower(parts[0]))]; ok {
		return country
	}
	return locale.DefaultCountry
}

// firstLanguageTag extracts the highest-priority tag from an Accept-Language
// header, dropping any quality parameter.
func firstLanguageTag(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	tag := header
	if i := strings.Index(tag, ","); i != -1 {
		tag = tag[:i]
	}
	if i := strings.Index(tag, ";"); i != -1 {
		tag = tag[:i]
	}
	tag = strings.TrimSpace(tag)
	if tag == "*" {
		return ""
	}
	return tag
}

// detectionCountry maps base languages to the country most of their speakers
// live in. It differs from the canonical locale table in one row: detection
// favors BR for "pt", while the canonical country stays PT.
var detectionCountry = map[locale.LanguageCode]locale.CountryCode{
	"en": "US", "tr": "TR", "de": "DE", "fr": "FR", "es": "ES",
	"it": "IT", "pt": "BR", "ru": "RU", "ja": "JP", "ko": "KR",
	"zh": "CN", "ar": "SA", "hi": "IN", "nl": "NL", "sv": "SE",
	"no": "NO", "da": "DK", "fi": "FI", "pl": "PL", "el": "GR",
}
