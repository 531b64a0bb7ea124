// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, id generation and
// access token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
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

// IdentityCtxKey is the key under which the authorization middleware stores
// the verified [models.Claims] of the caller.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying claims.
func WithIdentity(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, claims)
}

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found, has the correct type and a non-empty ID
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetIdentityFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(IdentityCtxKey).(models.Claims)
	if !ok || claims.ID == "" {
		return models.Claims{}, false
	}
	return claims, true
}
