package locale

import (
	"fmt"
	"strings"
)

// LanguageCode is a lowercase ISO-639-1 language code from the supported set.
type LanguageCode string

// CountryCode is an uppercase ISO-3166-1 alpha-2 country code.
type CountryCode string

// Default codes used whenever detection and stored preferences both come up empty.
const (
	DefaultLanguage LanguageCode = "en"
	DefaultCountry  CountryCode  = "US"
)

// Pair is the resolved (country, language) tuple governing text selection and
// routing for one session. Language is always a member of the supported set;
// Country is informational and kept plausible via the mapping tables.
type Pair struct {
	Country  CountryCode
	Language LanguageCode
}

// DefaultPair returns the fixed fallback pair used when every other source fails.
func DefaultPair() Pair {
	return Pair{Country: DefaultCountry, Language: DefaultLanguage}
}

// IsZero reports whether the pair carries no values at all.
func (p Pair) IsZero() bool {
	return p.Country == "" && p.Language == ""
}

// String implements fmt.Stringer for logging.
func (p Pair) String() string {
	return string(p.Country) + "/" + string(p.Language)
}

// ParseCountry normalizes and validates a raw country code string.
// Input is case-insensitive; the result is always uppercase.
func ParseCountry(raw string) (CountryCode, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, raw)
	}
	for _, r := range raw {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, raw)
		}
	}
	return CountryCode(strings.ToUpper(raw)), nil
}

// ParseLanguage normalizes a raw language tag and validates it against the
// supported set. Region subtags are stripped, so "pt-BR" parses to "pt".
func ParseLanguage(raw string) (LanguageCode, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(raw, "-_"); i != -1 {
		raw = raw[:i]
	}
	code := LanguageCode(raw)
	if !IsSupported(code) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, raw)
	}
	return code, nil
}
