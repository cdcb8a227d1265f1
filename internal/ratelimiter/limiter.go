package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter is a single token bucket shared by every inbound request.
// A Limiter built with ratePerSec == 0 never rejects anything.
type Limiter struct {
	l *rate.Limiter
}

// New creates a Limiter refilling ratePerSec tokens per second with room
// for burst tokens. A burst of 0 defaults to ratePerSec.
func New(ratePerSec, burst int) *Limiter {
	if ratePerSec <= 0 {
		return &Limiter{}
	}
	if burst <= 0 {
		burst = ratePerSec
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Enabled reports whether the limiter enforces a rate at all.
func (lim *Limiter) Enabled() bool {
	return lim.l != nil
}

// Allow reports whether a request may proceed right now, consuming a
// token if so. HTTP handlers use this instead of Wait so callers get an
// immediate 429 rather than a stalled connection.
func (lim *Limiter) Allow() bool {
	if lim.l == nil {
		return true
	}
	return lim.l.Allow()
}

// Wait blocks until a token is available or ctx is cancelled.
func (lim *Limiter) Wait(ctx context.Context) error {
	if lim.l == nil {
		return nil
	}
	return lim.l.Wait(ctx)
}
