// Package preference persists the resolved locale pair across visits, in two
// tiers keyed by session identity.
//
// The anonymous tier (CookieStore) keeps two plain string cookies,
// user_country and user_language, root-scoped with a one-year lifetime.
// Reads are all-or-nothing: a missing or invalid half makes the whole pair
// read as absent, which forces a clean re-resolution instead of adopting a
// mismatched pair. Cookies are client-writable and therefore best-effort
// only; values are validated on every read.
//
// The authenticated tier (ProfileStore) is a durable record on the
// user_profiles table keyed by user ID. It is the authority for logged-in
// sessions and overwrites the cookie tier on every session start. Writes go
// through AsyncProfileWriter: the caller's state update stays synchronous
// and optimistic while persistence happens in the background, with failures
// reported on a channel rather than lost in logs.
package preference
