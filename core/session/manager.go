package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/streamvista/localekit/core/geo"
	"github.com/streamvista/localekit/core/locale"
	"github.com/streamvista/localekit/core/preference"
	"github.com/streamvista/localekit/pkg/broadcast"
)

// CountryPolicy governs what happens to a stored country when the URL carries
// a different language. The reference behavior is ambiguous here, so the
// precedence is a policy rather than hard-wired.
type CountryPolicy int

const (
	// KeepStoredCountry preserves a previously stored country and only
	// adopts the URL's language. Default.
	KeepStoredCountry CountryPolicy = iota
	// DeriveCountryFromLanguage replaces the stored country with the
	// canonical country of the URL's language.
	DeriveCountryFromLanguage
)

const (
	defaultNotifyDelay = 100 * time.Millisecond
	defaultEventBuffer = 16
)

// Manager wires the resolution dependencies together and creates sessions.
// One manager serves the whole process; sessions are cheap per-visitor
// handles.
type Manager struct {
	cookies     *preference.CookieStore
	profiles    preference.ProfileStore
	writer      *preference.AsyncProfileWriter
	geo         *geo.Chain
	broadcaster *broadcast.MemoryBroadcaster[ChangeEvent]
	policy      CountryPolicy
	notifyDelay time.Duration
	log         *slog.Logger
}

// ManagerOption configures the manager.
type ManagerOption func(*Manager)

// WithCookieStore sets the anonymous preference tier.
func WithCookieStore(store *preference.CookieStore) ManagerOption {
	return func(m *Manager) {
		if store != nil {
			m.cookies = store
		}
	}
}

// WithProfileStore sets the authenticated preference tier.
func WithProfileStore(store preference.ProfileStore) ManagerOption {
	return func(m *Manager) {
		m.profiles = store
	}
}

// WithGeoChain sets the geolocation fallback chain.
func WithGeoChain(chain *geo.Chain) ManagerOption {
	return func(m *Manager) {
		if chain != nil {
			m.geo = chain
		}
	}
}

// WithCountryPolicy sets the URL-language versus stored-country precedence.
func WithCountryPolicy(policy CountryPolicy) ManagerOption {
	return func(m *Manager) {
		m.policy = policy
	}
}

// WithNotifyDelay overrides the delay between a change and its broadcast.
func WithNotifyDelay(delay time.Duration) ManagerOption {
	return func(m *Manager) {
		if delay >= 0 {
			m.notifyDelay = delay
		}
	}
}

// WithLogger sets the manager logger.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a manager with default stores and the default provider
// chain. The zero configuration is fully usable for anonymous traffic; a
// profile store is only needed once authenticated sessions appear.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		cookies:     preference.NewCookieStore(),
		geo:         geo.New(),
		broadcaster: broadcast.NewMemoryBroadcaster[ChangeEvent](defaultEventBuffer),
		policy:      KeepStoredCountry,
		notifyDelay: defaultNotifyDelay,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.writer = preference.NewAsyncProfileWriter(m.profiles, defaultEventBuffer, m.log)
	return m
}

// NewManagerFromConfig creates a manager from environment configuration.
func NewManagerFromConfig(cfg Config, opts ...ManagerOption) *Manager {
	configOpts := []ManagerOption{
		WithNotifyDelay(cfg.NotifyDelay),
		WithCountryPolicy(cfg.countryPolicy()),
	}
	configOpts = append(configOpts, opts...)
	return NewManager(configOpts...)
}

// Start creates the visitor's session and runs the initial resolution pass.
// The returned session is in the Resolved state.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, r *http.Request, id Identity) *Session {
	s := &Session{manager: m, identity: id, state: Uninitialized}
	s.resolve(ctx, w, r)
	return s
}

// Subscribe registers a listener for change events. The subscription lives
// until ctx is cancelled.
func (m *Manager) Subscribe(ctx context.Context) broadcast.Subscriber[ChangeEvent] {
	return m.broadcaster.Subscribe(ctx)
}

// Failures exposes asynchronous profile persistence failures.
func (m *Manager) Failures() <-chan preference.Failure {
	return m.writer.Failures()
}

// Close shuts down the event broadcaster.
func (m *Manager) Close() error {
	return m.broadcaster.Close()
}

// DetectPair runs the stateless detection chain for a request that carries no
// session at all, as the routing gate does for bare paths.
func (m *Manager) DetectPair(ctx context.Context, ip, acceptLanguage string) locale.Pair {
	country := m.geo.DetectCountry(ctx, ip, acceptLanguage)
	return locale.PairForCountry(country)
}
