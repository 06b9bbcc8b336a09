package session

import (
	"strings"
	"time"
)

// Config provides environment-based configuration for the session manager.
type Config struct {
	NotifyDelay time.Duration `env:"LOCALE_NOTIFY_DELAY" envDefault:"100ms"`
	// CountryPolicyName selects the URL-language versus stored-country
	// precedence: "keep-stored" or "derive".
	CountryPolicyName string `env:"LOCALE_COUNTRY_POLICY" envDefault:"keep-stored"`
}

func (c Config) countryPolicy() CountryPolicy {
	if strings.EqualFold(strings.TrimSpace(c.CountryPolicyName), "derive") {
		return DeriveCountryFromLanguage
	}
	return KeepStoredCountry
}
