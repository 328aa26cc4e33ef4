package middleware

import (
	"voice-timesheet/pkg/log"
)

// Middleware holds the gin middlewares shared by all routes.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A rateLimitPerMin of zero or less disables rate limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	mw := Middleware{l: l}
	if rateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(rateLimitPerMin)
	}
	return mw
}
