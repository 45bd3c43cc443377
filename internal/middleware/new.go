package middleware

import (
	"time"

	"note-task-planner/pkg/log"
)

// Middleware bundles the gin middlewares shared by every delivery package.
type Middleware struct {
	l           log.Logger
	defaultTZ   *time.Location
	extractions *rateLimiter
}

// New builds the middlewares. defaultTZ is the viewer timezone for requests
// that do not name one; extractionsPerMin bounds the extraction endpoints per
// owner (0 disables the limit).
func New(l log.Logger, defaultTZ *time.Location, extractionsPerMin int) Middleware {
	if defaultTZ == nil {
		defaultTZ = time.UTC
	}
	return Middleware{
		l:           l,
		defaultTZ:   defaultTZ,
		extractions: newRateLimiter(extractionsPerMin),
	}
}
