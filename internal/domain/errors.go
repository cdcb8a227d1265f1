package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrHostnameResolution = errors.New("unable to resolve local hostname")
	ErrRateLimited        = errors.New("too many requests, try again later")
)
