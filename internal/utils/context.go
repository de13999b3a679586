// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, client address
// extraction, HTTP client initialization, JWT signing and validation, and
// identifier generation.
package utils

import (
	"context"

	"github.com/leanttro/leanttro-web/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TenantCtxKey is the key used to store the resolved [models.Tenant] of the
// current request.
var TenantCtxKey = contextKey("tenant")

// ClientIPCtxKey is the key used to store the client address of the current
// request, as returned by ClientIP.
var ClientIPCtxKey = contextKey("clientIP")

// WithTenant returns a copy of ctx carrying tenant.
func WithTenant(ctx context.Context, tenant models.Tenant) context.Context {
	return context.WithValue(ctx, TenantCtxKey, tenant)
}

// GetTenantFromContext retrieves the tenant stored by WithTenant.
//
// Returns the tenant and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing; the zero Tenant is a system tenant
func GetTenantFromContext(ctx context.Context) (models.Tenant, bool) {
	tenant, ok := ctx.Value(TenantCtxKey).(models.Tenant)
	return tenant, ok
}

// WithClientIP returns a copy of ctx carrying the client address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPCtxKey, ip)
}

// GetClientIPFromContext retrieves the client address stored by
// WithClientIP, or "" when absent.
func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPCtxKey).(string)
	return ip
}
