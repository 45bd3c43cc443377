package model

import (
	"context"
	"time"
)

// Scope identifies the owner on whose behalf a request runs, plus the
// viewer's timezone used for calendar arithmetic.
type Scope struct {
	UserID   string
	Username string
	Timezone *time.Location
}

// Location returns the viewer timezone, UTC when unset.
func (s Scope) Location() *time.Location {
	if s.Timezone == nil {
		return time.UTC
	}
	return s.Timezone
}

// Now returns the current instant in the viewer's timezone.
func (s Scope) Now() time.Time {
	return time.Now().In(s.Location())
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}

// Environment names
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
