package models

import (
	"context"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller resolved from the request session.
type Identity struct {
	RoqUserID string   `json:"roq_user_id"`
	TenantID  string   `json:"tenant_id"`
	Roles     []string `json:"roles"`
}

func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

func (i Identity) HasAnyRole(roles []string) bool {
	for _, role := range roles {
		if i.HasRole(role) {
			return true
		}
	}
	return false
}

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	RoqUserID string   `json:"roq_user_id"`
	TenantID  string   `json:"tenant_id"`
	Roles     []string `json:"roles"`
}

func (c *SessionClaims) Identity() Identity {
	return Identity{RoqUserID: c.RoqUserID, TenantID: c.TenantID, Roles: c.Roles}
}

type contextKey string

const (
	identityContextKey contextKey = "identity"
	traceIDContextKey  contextKey = "trace_id"
)

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDContextKey, traceID)
}

// TraceIDFromContext returns the request trace id, or "" outside a request.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDContextKey).(string)
	return traceID
}
