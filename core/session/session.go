package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/streamvista/localekit/core/locale"
)

// State tracks the session's resolution lifecycle.
type State int

const (
	// Uninitialized means no resolution pass has run yet.
	Uninitialized State = iota
	// Resolving means a resolution pass is in flight.
	Resolving
	// Resolved means the session holds an authoritative pair.
	Resolved
	// Ended means the session was torn down; further updates are ignored.
	Ended
)

// Identity is the session identity variant. It determines which persistence
// tier is authoritative: cookies for anonymous visitors, the profile record
// for authenticated users.
type Identity struct {
	userID uuid.UUID
}

// Anonymous returns the identity of a visitor without a profile record.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity backed by a profile record.
func Authenticated(userID uuid.UUID) Identity {
	return Identity{userID: userID}
}

// IsAuthenticated reports whether a profile record backs this session.
func (i Identity) IsAuthenticated() bool {
	return i.userID != uuid.Nil
}

// UserID returns the profile key, or uuid.Nil for anonymous sessions.
func (i Identity) UserID() uuid.UUID {
	return i.userID
}

// ChangeEvent is the broadcast payload emitted when a preference changes.
// At least one of the Changed flags is always true: no change, no event.
type ChangeEvent struct {
	CountryChanged  bool
	LanguageChanged bool
	NewCountry      locale.CountryCode
	NewLanguage     locale.LanguageCode
}

// Change summarizes the synchronous outcome of a set operation.
type Change struct {
	Event ChangeEvent
	// RedirectPath is the language-corrected path the caller should apply
	// with a history replace. Empty when the current path already matches,
	// which is also the guard that keeps a rewrite from re-triggering the
	// operation that produced it.
	RedirectPath string
	// Seq stamps the persistence write scheduled for this change, letting
	// observers match failure reports against in-memory state.
	Seq uint64
}

// Session is the per-visitor locale handle: created at session start, passed
// explicitly to the components that need it, and torn down at session end.
// It is the only holder of the active pair; all mutations go through
// SetCountry, SetLanguage, and SetIdentity.
type Session struct {
	mu       sync.Mutex
	manager  *Manager
	identity Identity
	pair     locale.Pair
	state    State
	seq      uint64
	urlSync  bool
}

// Pair returns the active locale pair.
func (s *Session) Pair() locale.Pair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair
}

// Identity returns the current session identity.
func (s *Session) Identity() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// State returns the resolution lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsRTL reports whether the active language is written right to left.
func (s *Session) IsRTL() bool {
	return locale.IsRTL(s.Pair().Language)
}

// URLSyncEnabled reports whether the session rewrites the language prefix on
// language changes. It turns on once a supported language is observed in the
// URL path.
func (s *Session) URLSyncEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urlSync
}

// EnableURLSync switches language-prefix rewriting on for this session.
func (s *Session) EnableURLSync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urlSync = true
}

// End tears the session down. Pending delayed notifications and late
// persistence acknowledgements are dropped instead of mutating a dead
// session.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Ended
}

// nextSeq stamps a write under the session lock.
// Callers must hold s.mu.
func (s *Session) nextSeq() uint64 {
	s.seq++
	return s.seq
}
