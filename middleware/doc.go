// Package middleware provides HTTP middleware for language-prefixed routing.
//
// LanguageGate enforces that every in-scope page is reached through a URL
// whose first segment is a supported language code. Requests already carrying
// a valid prefix pass through with the language stored in the request context;
// bare paths are redirected to their prefixed form, choosing the language
// from the stored cookie preference first and the detection chain second.
//
// Exempt paths bypass the gate entirely, for flows whose URLs must stay
// byte-stable (password reset links, OAuth callbacks).
//
//	mux := http.NewServeMux()
//	handler := middleware.LanguageGate(mgr)(mux)
//
// Downstream handlers read the active language with GetLanguage:
//
//	if lang, ok := middleware.GetLanguage(r.Context()); ok {
//		// render in lang
//	}
package middleware
