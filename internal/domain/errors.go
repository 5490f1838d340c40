package domain

import "errors"

// Error taxonomy shared by adapters, services and the HTTP layer.
// Callers classify with errors.Is; messages stay server-side.
var (
	// Bad or missing input that the user can correct.
	ErrValidation = errors.New("validation failed")
	// A place name the geocoding service could not resolve.
	ErrNotFound = errors.New("place not found")
	// Network, status or decoding failure talking to a dependency.
	ErrUpstream = errors.New("upstream failure")
)
