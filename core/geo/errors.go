package geo

import "errors"

var (
	// ErrCacheMiss indicates no cached country exists for the IP.
	ErrCacheMiss = errors.New("geo: cache miss")

	// ErrMalformedResponse indicates a provider answered with an unusable body.
	ErrMalformedResponse = errors.New("geo: malformed provider response")

	// ErrProviderStatus indicates a provider answered with a non-2xx status.
	ErrProviderStatus = errors.New("geo: provider returned non-2xx status")
)
