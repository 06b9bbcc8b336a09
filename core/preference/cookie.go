package preference

import (
	"net/http"

	"github.com/streamvista/localekit/core/locale"
)

// Default cookie parameters: two plain string cookies scoped to the root
// path with a one-year lifetime. The values are client-writable, so reads
// validate and treat anything suspect as absent.
const (
	DefaultCountryCookie  = "user_country"
	DefaultLanguageCookie = "user_language"
	DefaultCookieMaxAge   = 365 * 24 * 60 * 60
)

// CookieStore is the anonymous preference tier backed by browser cookies.
type CookieStore struct {
	countryName  string
	languageName string
	maxAge       int
	secure       bool
}

// CookieOption configures the store.
type CookieOption func(*CookieStore)

// WithCookieNames overrides the default cookie names.
func WithCookieNames(country, language string) CookieOption {
	return func(s *CookieStore) {
		if country != "" {
			s.countryName = country
		}
		if language != "" {
			s.languageName = language
		}
	}
}

// WithCookieMaxAge overrides the default one-year lifetime.
func WithCookieMaxAge(seconds int) CookieOption {
	return func(s *CookieStore) {
		if seconds > 0 {
			s.maxAge = seconds
		}
	}
}

// WithSecureCookies marks the cookies HTTPS-only.
func WithSecureCookies() CookieOption {
	return func(s *CookieStore) {
		s.secure = true
	}
}

// NewCookieStore creates the anonymous tier with default parameters.
func NewCookieStore(opts ...CookieOption) *CookieStore {
	s := &CookieStore{
		countryName:  DefaultCountryCookie,
		languageName: DefaultLanguageCookie,
		maxAge:       DefaultCookieMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the stored pair. Partial or invalid state reads as absent:
// a session with only one cookie set re-resolves from scratch rather than
// adopting a mismatched pair.
func (s *CookieStore) Read(r *http.Request) (locale.Pair, error) {
	countryCookie, err := r.Cookie(s.countryName)
	if err != nil {
		return locale.Pair{}, ErrNoPreference
	}
	languageCookie, err := r.Cookie(s.languageName)
	if err != nil {
		return locale.Pair{}, ErrNoPreference
	}

	country, err := locale.ParseCountry(countryCookie.Value)
	if err != nil {
		return locale.Pair{}, ErrNoPreference
	}
	language, err := locale.ParseLanguage(languageCookie.Value)
	if err != nil {
		return locale.Pair{}, ErrNoPreference
	}

	return locale.Pair{Country: country, Language: language}, nil
}

// Write stores both halves of the pair. Both Set-Cookie headers are emitted
// before returning, so a subsequent read observes either the full pair or,
// on the very first visit, nothing.
func (s *CookieStore) Write(w http.ResponseWriter, pair locale.Pair) {
	http.SetCookie(w, s.cookie(s.countryName, string(pair.Country)))
	http.SetCookie(w, s.cookie(s.languageName, string(pair.Language)))
}

// Clear expires both cookies.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	country := s.cookie(s.countryName, "")
	country.MaxAge = -1
	language := s.cookie(s.languageName, "")
	language.MaxAge = -1
	http.SetCookie(w, country)
	http.SetCookie(w, language)
}

func (s *CookieStore) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   s.maxAge,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
