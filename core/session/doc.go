// Package session owns the per-visitor locale state: one (country, language)
// pair per session, reconciled from four independent sources of truth and
// kept consistent across all of them.
//
// A Manager wires the dependencies once per process; Session is the explicit
// per-visitor handle created at session start, injected into whatever needs
// the active pair, and ended when the visitor leaves. There is no ambient
// global state.
//
// # Resolution
//
// Manager.Start runs one resolution pass in strict priority order:
// authenticated profile, URL language prefix, stored cookie pair, and
// finally the geolocation chain. Each step short-circuits on a hit and none
// fails fatally, so a session always reaches the Resolved state, in the
// worst case holding the fixed default pair. A login or logout mid-session
// re-enters resolution through Session.SetIdentity.
//
// # Synchronization
//
// Session.SetCountry and Session.SetLanguage are the only writers back into
// the URL, cookie, and profile. The in-memory update is synchronous; the
// side effects are not: cookie writes settle immediately, profile writes run
// in the background with failures surfaced on Manager.Failures, and the
// change event reaches subscribers only after a short delay so listeners see
// settled state. Writes are stamped with a per-session sequence so a late
// completion can be matched against (and discarded in favor of) newer
// in-memory state. Unchanged picks emit nothing.
//
//	mgr := session.NewManager(
//		session.WithProfileStore(profiles),
//		session.WithGeoChain(chain),
//	)
//	sess := mgr.Start(ctx, w, r, session.Authenticated(userID))
//	defer sess.End()
//
//	change := sess.SetLanguage(ctx, w, r.URL.Path, "tr")
//	if change.RedirectPath != "" {
//		// apply with a history replace, not a push
//	}
package session
