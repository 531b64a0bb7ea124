// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the token claims in the request context with [utils.WithIdentity] before
// delegating to the next handler. The claims are not checked against the
// user store; a deleted user stays authenticated until the token expires.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid ([service.ErrTokenIsInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, r, ErrEmptyAuthorizationHeader, "")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			respondWithError(w, r, ErrInvalidAuthorizationHeader, "")
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			respondWithStatus(w, r, http.StatusUnauthorized, err.Error(), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, claims)))
	})
}
