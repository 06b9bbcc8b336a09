// Package localekit resolves and synchronizes per-visitor locale state for
// HTTP applications: one (country, language) pair per session, reconciled
// from the authenticated profile, the URL language prefix, stored cookies,
// and IP geolocation, and written back to all of them without feedback loops.
//
// The module is organized as focused packages:
//
//   - core/locale: language/country code types, the supported-language set,
//     derivation tables, URL path helpers, display names
//   - core/geo: the IP geolocation provider chain with Accept-Language and
//     fixed-default fallbacks, plus an optional Redis result cache
//   - core/preference: the cookie tier and the Postgres profile tier, with a
//     background writer for fire-and-forget profile persistence
//   - core/session: the per-visitor Session handle, the resolution pass, and
//     the SetCountry/SetLanguage synchronization operations
//   - middleware: the language-prefix routing gate
//   - app/simple: a batteries-included composition root wiring everything
//     from environment configuration
//
// Supporting packages under pkg/ (async, broadcast, clientip) and
// integration/database/ (pg, redis) carry the infrastructure the core
// packages build on.
package localekit
