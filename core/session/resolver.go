package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/logger"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/pkg/clientip"
)

// resolve reconciles profile, URL, cookie, and geolocation state into one
// authoritative pair. It runs on session start and again whenever the
// identity transitions between anonymous and authenticated.
//
// The four sources are tried in strict priority order, each short-circuiting
// on a hit:
//
//  1. Authenticated profile, mirrored into the cookie so a later
//     anonymous-looking read still sees the right pair.
//  2. URL language prefix. Only the language half: a stored country is kept
//     (policy-dependent) so navigation never thrashes the informational
//     country, and geolocation is never consulted once a URL carries a
//     language.
//  3. Complete cookie pair.
//  4. Geolocation chain, persisted for the next visit.
//
// No step fails fatally; step 4's total fallback guarantees termination.
func (s *Session) resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Ended {
		return
	}
	s.state = Resolving
	m := s.manager

	// Step 1: authenticated profile is authoritative.
	if s.identity.IsAuthenticated() && m.profiles != nil {
		pair, err := m.profiles.Get(ctx, s.identity.UserID())
		switch {
		case err == nil:
			m.cookies.Write(w, pair)
			s.pair = pair
			s.state = Resolved
			m.log.DebugContext(ctx, "locale resolved from profile",
				logger.UserID(s.identity.UserID().String()), logger.LocalePair(pair))
			return
		case !errors.Is(err, preference.ErrProfileNotFound):
			m.log.WarnContext(ctx, "profile read failed, falling back",
				logger.UserID(s.identity.UserID().String()), logger.Error(err))
		}
	}

	stored, storedErr := m.cookies.Read(r)

	// Step 2: a URL-carried language wins over stored state for the
	// language half only.
	if lang, ok := locale.LanguageFromPath(r.URL.Path); ok {
		pair := locale.PairForLanguage(lang)
		if storedErr == nil && m.policy == KeepStoredCountry {
			pair.Country = stored.Country
		}
		s.pair = pair
		s.urlSync = true
		s.state = Resolved
		m.log.DebugContext(ctx, "locale resolved from url", logger.LocalePair(pair))
		return
	}

	// Step 3: complete stored pair.
	if storedErr == nil {
		s.pair = stored
		s.state = Resolved
		m.log.DebugContext(ctx, "locale resolved from cookie", logger.LocalePair(stored))
		return
	}

	// Step 4: geolocation, then persist for the next visit.
	ip := clientip.GetIP(r)
	country := m.geo.DetectCountry(ctx, ip, r.Header.Get("Accept-Language"))
	pair := locale.PairForCountry(country)
	m.cookies.Write(w, pair)
	s.pair = pair
	s.state = Resolved
	m.log.DebugContext(ctx, "locale resolved from geolocation",
		logger.ClientIP(ip), logger.LocalePair(pair))
}

// SetIdentity re-runs resolution after an identity transition, typically when
// a login completes mid-session or the user signs out.
func (s *Session) SetIdentity(ctx context.Context, w http.ResponseWriter, r *http.Request, id Identity) locale.Pair {
	s.mu.Lock()
	if s.state == Ended {
		pair := s.pair
		s.mu.Unlock()
		return pair
	}
	s.identity = id
	s.state = Uninitialized
	s.mu.Unlock()

	s.resolve(ctx, w, r)
	return s.Pair()
}
