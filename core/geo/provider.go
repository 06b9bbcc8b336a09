package geo

import (
	"fmt"
	"strings"
)

// Provider describes one external IP-geolocation source: a JSON endpoint and
// the provider-specific response field carrying the two-letter country code.
// Endpoints may contain a single %s placeholder for the client IP; endpoints
// without one resolve the calling address instead.
type Provider struct {
	Endpoint     string
	CountryField string
}

// URL renders the request URL for the given client IP.
func (p Provider) URL(ip string) string {
	if strings.Contains(p.Endpoint, "%s") {
		return fmt.Sprintf(p.Endpoint, ip)
	}
	return p.Endpoint
}

// DefaultProviders returns the built-in lookup sources in fallback order.
// The first provider that returns a well-formed country wins.
func DefaultProviders() []Provider {
	return []Provider{
		{Endpoint: "https://ipapi.co/%s/json/", CountryField: "country_code"},
		{Endpoint: "http://ip-api.com/json/%s", CountryField: "countryCode"},
		{Endpoint: "https://geolocation-db.com/json/%s", CountryField: "country_code"},
	}
}
