// Package locale defines the (country, language) data model and the static
// mapping tables behind locale resolution.
//
// The supported language set is closed: twenty lowercase ISO-639-1 codes.
// Country codes are uppercase ISO-3166-1 alpha-2. Two total mapping functions
// connect them:
//
//   - LanguageForCountry: many-to-one, unmapped countries resolve to "en"
//   - CountryForLanguage: one-to-one canonical country per supported language
//
// Both never fail, so callers can derive a consistent Pair from either half
// without error handling. The closure invariant holds by construction: every
// language reachable from the country table is a member of the supported set
// (verified by tests).
//
// The package also provides URL path helpers for the language-prefix routing
// convention (LanguageFromPath, SwitchLanguageInPath) and English country
// display names backed by golang.org/x/text.
//
// Usage:
//
//	pair := locale.PairForCountry("TR") // {TR tr}
//	if locale.IsRTL(pair.Language) {
//		// flip layout direction
//	}
package locale
