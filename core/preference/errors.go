package preference

import "errors"

var (
	// ErrProfileNotFound indicates no profile record exists for the user ID.
	ErrProfileNotFound = errors.New("preference: profile not found")

	// ErrNoPreference indicates the anonymous tier holds no complete pair.
	ErrNoPreference = errors.New("preference: no stored preference")

	// ErrNoProfileStore indicates a profile write was scheduled without a
	// backing store.
	ErrNoProfileStore = errors.New("preference: no profile store configured")
)
