// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken when the issuer,
	// sign key, duration or identity id is missing.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrTokenExpired is returned by ValidateAndParseJWTToken when the token
	// signature is valid but its expiry has elapsed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned by ValidateAndParseJWTToken for every other
	// failure: malformed token, bad signature, wrong issuer, wrong algorithm
	// or missing identity claims.
	ErrTokenInvalid = errors.New("token is invalid")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token asserting identity.
//
// Besides the identity claims (id, username, email) the token includes:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns ErrInvalidTokenParams if issuer, signKey or identity.ID is empty or
// tokenDuration is zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user.Identity(), "go-blog", time.Hour, "secret")
func GenerateJWTToken(identity models.Claims, issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || identity.ID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		ID:       identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification with signKey, HS256 only
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Identity (id) claim presence and agreement with the subject
//
// On failure the returned claims are always zero. An elapsed token yields an
// error matching ErrTokenExpired, anything else ErrTokenInvalid.
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "go-blog")
//	if errors.Is(err, utils.ErrTokenExpired) {
//	    // ask the client to log in again
//	}
func ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.ID == "" || claims.Subject != claims.ID {
		return models.Claims{}, fmt.Errorf("%w: identity claims are missing", ErrTokenInvalid)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme must be exactly "Bearer" followed by one space and
// a non-empty token without further spaces.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
	if !ok || token == "" || strings.ContainsAny(token, " \t") {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
