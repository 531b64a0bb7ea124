// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity asserted by an access token.
//
// The custom fields are serialised next to the standard JWT claim set
// (iss, sub, exp, iat) defined by RFC 7519. Subject always equals ID.
type Claims struct {
	// ID is the user identifier.
	ID string `json:"id"`

	// Username is the user's unique login.
	Username string `json:"username"`

	// Email is the user's email address at the time of issuance.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Equal reports whether c and other assert the same identity.
// Registered claims (expiry, issue time) are ignored.
func (c Claims) Equal(other Claims) bool {
	return c.ID == other.ID && c.Username == other.Username && c.Email == other.Email
}

// Token wraps a signed access token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims are the identity and registered claims embedded in the token.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
