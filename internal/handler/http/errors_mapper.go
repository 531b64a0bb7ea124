// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
)

// errorStatusMap holds the status of every error the API reports as a
// client failure. Missing posts are answered with 401, matching the
// published API.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUsernameTaken:       http.StatusConflict,
	service.ErrUserNotFound:        http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusBadRequest,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	service.ErrNoIdentity:          http.StatusUnauthorized,
	service.ErrPostNotFound:        http.StatusUnauthorized,
	service.ErrPostNotCreated:      http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMalformedRequest:           http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
