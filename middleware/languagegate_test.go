package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvista/localekit/core/geo"
	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/core/session"
	"github.com/streamvista/localekit/middleware"
)

// newManager builds a manager whose geo chain talks to a local stub returning
// the given body, so tests never reach the network.
func newManager(t *testing.T, body string) *session.Manager {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	chain := geo.New(
		geo.WithTimeout(100*time.Millisecond),
		geo.WithProviders(geo.Provider{Endpoint: srv.URL, CountryField: "country_code"}),
	)
	mgr := session.NewManager(session.WithGeoChain(chain))
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

func okHandler(seen *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			if lang, ok := middleware.GetLanguage(r.Context()); ok {
				*seen = string(lang)
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestLanguageGate(t *testing.T) {
	t.Run("prefixed path passes through with language in context", func(t *testing.T) {
		mgr := newManager(t, "")
		var seen string
		gate := middleware.LanguageGate(mgr)(okHandler(&seen))

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tr/titles/42", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tr", seen)
		assert.Equal(t, "tr", w.Header().Get("Content-Language"))
	})

	t.Run("unsupported prefix is treated as a bare path", func(t *testing.T) {
		mgr := newManager(t, `{"country_code":"TR"}`)
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/xx/titles", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/tr/xx/titles", w.Header().Get("Location"))
	})

	t.Run("bare path redirects using the cookie preference", func(t *testing.T) {
		mgr := newManager(t, "")
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search", nil)
		r.AddCookie(&http.Cookie{Name: preference.DefaultCountryCookie, Value: "DE"})
		r.AddCookie(&http.Cookie{Name: preference.DefaultLanguageCookie, Value: "de"})
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/de/search", w.Header().Get("Location"))
	})

	t.Run("bare path without cookies falls back to detection", func(t *testing.T) {
		mgr := newManager(t, `{"country_code":"FR"}`)
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/titles/42", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/fr/titles/42", w.Header().Get("Location"))
	})

	t.Run("redirect preserves the query string", func(t *testing.T) {
		mgr := newManager(t, "")
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search?q=drama&page=2", nil)
		r.AddCookie(&http.Cookie{Name: preference.DefaultCountryCookie, Value: "TR"})
		r.AddCookie(&http.Cookie{Name: preference.DefaultLanguageCookie, Value: "tr"})
		gate.ServeHTTP(w, r)

		assert.Equal(t, "/tr/search?q=drama&page=2", w.Header().Get("Location"))
	})

	t.Run("detection failure still redirects to the default language", func(t *testing.T) {
		mgr := newManager(t, "")
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/"+string(locale.DefaultLanguage)+"/search", w.Header().Get("Location"))
	})

	t.Run("exempt paths bypass the gate", func(t *testing.T) {
		mgr := newManager(t, "")
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		for _, path := range []string{"/reset-password", "/reset-password/confirm", "/auth/callback"} {
			w := httptest.NewRecorder()
			gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("exempt matching is per segment", func(t *testing.T) {
		mgr := newManager(t, "")
		gate := middleware.LanguageGate(mgr)(okHandler(nil))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/reset-password-help", nil)
		r.AddCookie(&http.Cookie{Name: preference.DefaultCountryCookie, Value: "US"})
		r.AddCookie(&http.Cookie{Name: preference.DefaultLanguageCookie, Value: "en"})
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("skip function bypasses everything", func(t *testing.T) {
		mgr := newManager(t, "")
		gate := middleware.LanguageGateWithConfig(middleware.LanguageGateConfig{
			Manager: mgr,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == "/healthz"
			},
		})(okHandler(nil))

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nil manager panics at construction", func(t *testing.T) {
		require.Panics(t, func() {
			middleware.LanguageGateWithConfig(middleware.LanguageGateConfig{})
		})
	})
}
