package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/logger"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/core/session"
	"github.com/streamvista/localekit/pkg/clientip"
)

// languageContextKey is used as a key for storing the active language in the
// request context.
type languageContextKey struct{}

// DefaultExemptPaths bypass language prefixing entirely: flows whose URLs are
// embedded in emails or registered with external providers and must not be
// rewritten.
var DefaultExemptPaths = []string{
	"/reset-password",
	"/auth/callback",
}

// LanguageGateConfig configures the routing gate.
type LanguageGateConfig struct {
	// Skip defines a function to skip the gate for specific requests.
	Skip func(r *http.Request) bool
	// Manager provides detection for paths carrying no language prefix (required).
	Manager *session.Manager
	// Cookies reads stored preferences before falling back to detection.
	// Default: a store with the default cookie names.
	Cookies *preference.CookieStore
	// ExemptPaths bypass the gate entirely. Default: DefaultExemptPaths.
	ExemptPaths []string
	// Logger logs redirect decisions. Default: discard.
	Logger *slog.Logger
}

// LanguageGate creates the routing gate with default configuration: every
// in-scope page is reached through a URL whose first segment is a supported
// language code, and bare paths redirect to their prefixed form.
func LanguageGate(mgr *session.Manager) func(http.Handler) http.Handler {
	return LanguageGateWithConfig(LanguageGateConfig{Manager: mgr})
}

// LanguageGateWithConfig creates the routing gate with custom configuration.
func LanguageGateWithConfig(cfg LanguageGateConfig) func(http.Handler) http.Handler {
	if cfg.Manager == nil {
		panic("language gate: session manager is required")
	}
	if cfg.Cookies == nil {
		cfg.Cookies = preference.NewCookieStore()
	}
	if cfg.ExemptPaths == nil {
		cfg.ExemptPaths = DefaultExemptPaths
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			for _, exempt := range cfg.ExemptPaths {
				if pathHasPrefix(r.URL.Path, exempt) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if lang, ok := locale.LanguageFromPath(r.URL.Path); ok {
				w.Header().Set("Content-Language", string(lang))
				next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
				return
			}

			// Bare path: detect a target language and redirect to the
			// prefixed form, keeping sub-path and query intact. The
			// fragment never reaches the server and survives client-side.
			lang := cfg.detectLanguage(r)
			target := locale.SwitchLanguageInPath(r.URL.Path, lang)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			cfg.Logger.DebugContext(r.Context(), "redirecting to language-prefixed url",
				logger.Path(r.URL.Path), logger.Language(lang))
			http.Redirect(w, r, target, http.StatusFound)
		})
	}
}

// detectLanguage picks the language for a bare path: stored preference first,
// then the full detection chain.
func (cfg LanguageGateConfig) detectLanguage(r *http.Request) locale.LanguageCode {
	if pair, err := cfg.Cookies.Read(r); err == nil {
		return pair.Language
	}
	pair := cfg.Manager.DetectPair(r.Context(), clientip.GetIP(r), r.Header.Get("Accept-Language"))
	return pair.Language
}

// pathHasPrefix matches whole path segments, so "/reset-password" does not
// capture "/reset-password-help".
func pathHasPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// WithLanguage returns a context carrying the active language.
func WithLanguage(ctx context.Context, lang locale.LanguageCode) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// GetLanguage retrieves the active language from the request context.
// Returns the language and whether it was present.
func GetLanguage(ctx context.Context) (locale.LanguageCode, bool) {
	lang, ok := ctx.Value(languageContextKey{}).(locale.LanguageCode)
	return lang, ok
}
