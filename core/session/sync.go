package session

import (
	"context"
	"net/http"
	"time"

	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/logger"
	"github.com/streamvista/localekit/pkg/broadcast"
)

// SetCountry applies a manual country pick. The language is derived through
// the country table so the pair stays consistent, state updates
// synchronously, persistence is scheduled on the appropriate tier, and one
// change event is emitted after the notify delay. Picking the current
// country again is a no-op: no write, no event.
func (s *Session) SetCountry(ctx context.Context, w http.ResponseWriter, code locale.CountryCode) Change {
	country, err := locale.ParseCountry(string(code))
	if err != nil {
		s.manager.log.WarnContext(ctx, "rejected invalid country pick",
			logger.Country(code), logger.Error(err))
		return Change{}
	}

	s.mu.Lock()
	if s.state == Ended {
		s.mu.Unlock()
		return Change{}
	}

	language := locale.LanguageForCountry(country)
	event := ChangeEvent{
		CountryChanged:  country != s.pair.Country,
		LanguageChanged: language != s.pair.Language,
		NewCountry:      country,
		NewLanguage:     language,
	}
	if !event.CountryChanged && !event.LanguageChanged {
		s.mu.Unlock()
		return Change{}
	}

	s.pair = locale.Pair{Country: country, Language: language}
	pair := s.pair
	id := s.identity
	seq := s.nextSeq()
	s.mu.Unlock()

	s.persist(ctx, w, id, pair, seq)
	s.scheduleNotify(event)
	return Change{Event: event, Seq: seq}
}

// SetLanguage applies a manual language pick or a URL-driven language change.
// Unsupported codes never propagate: they are substituted with the default
// language and the correction is logged. When URL synchronization is active
// the returned RedirectPath carries the corrected path for a history replace;
// it is empty when the path already matches, which keeps a rewrite from
// re-triggering the very change that produced it.
func (s *Session) SetLanguage(ctx context.Context, w http.ResponseWriter, currentPath string, code locale.LanguageCode) Change {
	if !locale.IsSupported(code) {
		s.manager.log.WarnContext(ctx, "unsupported language substituted with default",
			logger.Language(code))
		code = locale.DefaultLanguage
	}

	s.mu.Lock()
	if s.state == Ended {
		s.mu.Unlock()
		return Change{}
	}

	event := ChangeEvent{
		LanguageChanged: code != s.pair.Language,
		NewCountry:      s.pair.Country,
		NewLanguage:     code,
	}
	if derived := locale.CountryForLanguage(code); derived != s.pair.Country {
		event.CountryChanged = true
		event.NewCountry = derived
	}

	var redirect string
	if s.urlSync && currentPath != "" {
		if pathLang, ok := locale.LanguageFromPath(currentPath); !ok || pathLang != code {
			redirect = locale.SwitchLanguageInPath(currentPath, code)
		}
	}

	if !event.CountryChanged && !event.LanguageChanged {
		s.mu.Unlock()
		return Change{RedirectPath: redirect}
	}

	s.pair = locale.Pair{Country: event.NewCountry, Language: event.NewLanguage}
	pair := s.pair
	id := s.identity
	seq := s.nextSeq()
	s.mu.Unlock()

	s.persist(ctx, w, id, pair, seq)
	s.scheduleNotify(event)
	return Change{Event: event, RedirectPath: redirect, Seq: seq}
}

// persist writes the pair to every tier the identity touches. The cookie is
// always written synchronously so both tiers stay in step; profile writes are
// scheduled in the background and survive the request context, reporting
// failures through the manager's failure channel. In-memory state is never
// rolled back on persistence failure, and a completion for an older seq can
// never overwrite newer in-memory state because persistence is write-only
// from the session's perspective.
func (s *Session) persist(ctx context.Context, w http.ResponseWriter, id Identity, pair locale.Pair, seq uint64) {
	m := s.manager
	m.cookies.Write(w, pair)
	if !id.IsAuthenticated() {
		return
	}
	if m.profiles == nil {
		m.log.WarnContext(ctx, "no profile store configured, authenticated preference not persisted",
			logger.UserID(id.UserID().String()))
		return
	}
	m.writer.Write(context.WithoutCancel(ctx), id.UserID(), pair, seq)
}

// scheduleNotify emits the event after the configured delay, so listeners
// reacting to it observe settled cookie and URL state. Nothing is emitted
// for a session that ended in the meantime.
func (s *Session) scheduleNotify(event ChangeEvent) {
	m := s.manager
	time.AfterFunc(m.notifyDelay, func() {
		s.mu.Lock()
		ended := s.state == Ended
		s.mu.Unlock()
		if ended {
			return
		}
		_ = m.broadcaster.Broadcast(context.Background(), broadcast.Message[ChangeEvent]{Data: event})
	})
}
