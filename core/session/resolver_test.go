package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvista/localekit/core/geo"
	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/core/session"
)

// stubProfiles is an in-memory ProfileStore.
type stubProfiles struct {
	mu    sync.Mutex
	pairs map[uuid.UUID]locale.Pair
	err   error
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{pairs: make(map[uuid.UUID]locale.Pair)}
}

func (s *stubProfiles) Get(_ context.Context, userID uuid.UUID) (locale.Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return locale.Pair{}, s.err
	}
	pair, ok := s.pairs[userID]
	if !ok {
		return locale.Pair{}, preference.ErrProfileNotFound
	}
	return pair, nil
}

func (s *stubProfiles) Set(_ context.Context, userID uuid.UUID, pair locale.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.pairs[userID] = pair
	return nil
}

func (s *stubProfiles) get(userID uuid.UUID) (locale.Pair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair, ok := s.pairs[userID]
	return pair, ok
}

// failingGeoChain returns a chain whose single provider always errors, and a
// counter of how often it was consulted.
func failingGeoChain(t *testing.T) (*geo.Chain, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	chain := geo.New(
		geo.WithTimeout(100*time.Millisecond),
		geo.WithProviders(geo.Provider{Endpoint: srv.URL, CountryField: "country_code"}),
	)
	return chain, &hits
}

func countryGeoChain(t *testing.T, body string) *geo.Chain {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return geo.New(geo.WithProviders(geo.Provider{Endpoint: srv.URL, CountryField: "country_code"}))
}

func withCookies(r *http.Request, pair locale.Pair) *http.Request {
	r.AddCookie(&http.Cookie{Name: preference.DefaultCountryCookie, Value: string(pair.Country)})
	r.AddCookie(&http.Cookie{Name: preference.DefaultLanguageCookie, Value: string(pair.Language)})
	return r
}

func readCookiePair(t *testing.T, w *httptest.ResponseRecorder) locale.Pair {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	pair, err := preference.NewCookieStore().Read(r)
	require.NoError(t, err)
	return pair
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("profile takes precedence and overwrites the cookie", func(t *testing.T) {
		userID := uuid.New()
		profiles := newStubProfiles()
		profiles.pairs[userID] = locale.Pair{Country: "DE", Language: "de"}
		chain, hits := failingGeoChain(t)

		mgr := session.NewManager(
			session.WithProfileStore(profiles),
			session.WithGeoChain(chain),
		)
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/", nil),
			locale.Pair{Country: "US", Language: "en"})

		sess := mgr.Start(ctx, w, r, session.Authenticated(userID))
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "DE", Language: "de"}, sess.Pair())
		assert.Equal(t, session.Resolved, sess.State())
		assert.Equal(t, locale.Pair{Country: "DE", Language: "de"}, readCookiePair(t, w))
		assert.Zero(t, hits.Load(), "geolocation must not run when a profile exists")
	})

	t.Run("url language wins without invoking geolocation", func(t *testing.T) {
		chain, hits := failingGeoChain(t)
		mgr := session.NewManager(session.WithGeoChain(chain))
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/fr/search", nil)

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "FR", Language: "fr"}, sess.Pair())
		assert.True(t, sess.URLSyncEnabled())
		assert.Zero(t, hits.Load())
	})

	t.Run("url language keeps a stored country by default", func(t *testing.T) {
		chain, _ := failingGeoChain(t)
		mgr := session.NewManager(session.WithGeoChain(chain))
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/fr/search", nil),
			locale.Pair{Country: "DE", Language: "de"})

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "DE", Language: "fr"}, sess.Pair())
	})

	t.Run("derive policy replaces the stored country", func(t *testing.T) {
		chain, _ := failingGeoChain(t)
		mgr := session.NewManager(
			session.WithGeoChain(chain),
			session.WithCountryPolicy(session.DeriveCountryFromLanguage),
		)
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/fr/search", nil),
			locale.Pair{Country: "DE", Language: "de"})

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "FR", Language: "fr"}, sess.Pair())
	})

	t.Run("stored cookie pair is adopted", func(t *testing.T) {
		chain, hits := failingGeoChain(t)
		mgr := session.NewManager(session.WithGeoChain(chain))
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/search", nil),
			locale.Pair{Country: "TR", Language: "tr"})

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "TR", Language: "tr"}, sess.Pair())
		assert.Zero(t, hits.Load())
	})

	t.Run("geolocation is the last resort and persists its result", func(t *testing.T) {
		mgr := session.NewManager(session.WithGeoChain(countryGeoChain(t, `{"country_code":"TR"}`)))
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search", nil)

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "TR", Language: "tr"}, sess.Pair())
		assert.Equal(t, locale.Pair{Country: "TR", Language: "tr"}, readCookiePair(t, w))
	})

	t.Run("total failure terminates with the default pair", func(t *testing.T) {
		chain, _ := failingGeoChain(t)
		mgr := session.NewManager(session.WithGeoChain(chain))
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search", nil)

		start := time.Now()
		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()

		assert.Equal(t, locale.DefaultPair(), sess.Pair())
		assert.Less(t, time.Since(start), 2*time.Second, "resolution must not hang")
	})

	t.Run("profile read failure falls through instead of failing", func(t *testing.T) {
		userID := uuid.New()
		profiles := newStubProfiles()
		profiles.err = assert.AnError
		chain, _ := failingGeoChain(t)

		mgr := session.NewManager(
			session.WithProfileStore(profiles),
			session.WithGeoChain(chain),
		)
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/", nil),
			locale.Pair{Country: "SE", Language: "sv"})

		sess := mgr.Start(ctx, w, r, session.Authenticated(userID))
		defer sess.End()

		assert.Equal(t, locale.Pair{Country: "SE", Language: "sv"}, sess.Pair())
	})
}

func TestSetIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("login adopts the profile pair", func(t *testing.T) {
		userID := uuid.New()
		profiles := newStubProfiles()
		profiles.pairs[userID] = locale.Pair{Country: "JP", Language: "ja"}
		chain, _ := failingGeoChain(t)

		mgr := session.NewManager(
			session.WithProfileStore(profiles),
			session.WithGeoChain(chain),
		)
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/", nil),
			locale.Pair{Country: "US", Language: "en"})

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		defer sess.End()
		require.Equal(t, locale.Pair{Country: "US", Language: "en"}, sess.Pair())

		pair := sess.SetIdentity(ctx, w, r, session.Authenticated(userID))
		assert.Equal(t, locale.Pair{Country: "JP", Language: "ja"}, pair)
		assert.True(t, sess.Identity().IsAuthenticated())
	})

	t.Run("ended session ignores identity changes", func(t *testing.T) {
		chain, _ := failingGeoChain(t)
		mgr := session.NewManager(session.WithGeoChain(chain))
		defer mgr.Close()

		w := httptest.NewRecorder()
		r := withCookies(httptest.NewRequest(http.MethodGet, "/", nil),
			locale.Pair{Country: "US", Language: "en"})

		sess := mgr.Start(ctx, w, r, session.Anonymous())
		sess.End()

		pair := sess.SetIdentity(ctx, w, r, session.Authenticated(uuid.New()))
		assert.Equal(t, locale.Pair{Country: "US", Language: "en"}, pair)
		assert.Equal(t, session.Ended, sess.State())
	})
}
