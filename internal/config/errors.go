package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is inconsistent.
var (
	// ErrInvalidMode indicates a deployment mode other than "sandbox",
	// "production", or empty (empty defaults to production).
	ErrInvalidMode = errors.New("invalid deployment mode")

	// ErrPartialCredentials indicates a carrier with a client ID but no
	// client secret or vice versa; such credentials can never complete a
	// client-credentials grant.
	ErrPartialCredentials = errors.New("partial carrier credentials")
)
