package locale

import "strings"

// LanguageFromPath extracts the language prefix from a URL path.
// Returns false when the leading segment is absent or not a supported code.
func LanguageFromPath(path string) (LanguageCode, bool) {
	seg := firstSegment(path)
	if seg == "" {
		return "", false
	}
	code := LanguageCode(strings.ToLower(seg))
	if !IsSupported(code) {
		return "", false
	}
	return code, true
}

// SwitchLanguageInPath returns the path with its language prefix replaced by
// lang, inserting the prefix when the path carries none. The sub-path is
// preserved; query string and fragment are the caller's concern since they
// are not part of the path component.
func SwitchLanguageInPath(path string, lang LanguageCode) string {
	rest := path
	if _, ok := LanguageFromPath(path); ok {
		trimmed := strings.TrimPrefix(path, "/")
		if i := strings.Index(trimmed, "/"); i != -1 {
			rest = trimmed[i:]
		} else {
			rest = "/"
		}
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	if rest == "/" {
		return "/" + string(lang)
	}
	return "/" + string(lang) + rest
}

// firstSegment returns the leading path segment without slashes.
func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.Index(path, "/"); i != -1 {
		path = path[:i]
	}
	return path
}
