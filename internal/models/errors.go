package models

import "errors"

// Typed provider failures. The provider adapter translates whatever the
// backing API returns into these sentinels, so that everything above it
// can match with errors.Is instead of sniffing free-text messages.
var (
	// ErrRateLimited indicates quota or rate exhaustion at the provider.
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrModelNotFound indicates the requested model identifier is
	// unknown to the provider, or doesn't support content generation.
	ErrModelNotFound = errors.New("model not found")

	// ErrTransient indicates a failure which is likely to pass on its
	// own: timeouts, 5xx responses, overloaded backends.
	ErrTransient = errors.New("transient provider failure")
)
