package locale

import "errors"

var (
	// ErrUnsupportedLanguage indicates a language code outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language code")

	// ErrInvalidCountryCode indicates a value that is not a two-letter country code.
	ErrInvalidCountryCode = errors.New("invalid country code")
)
