// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding errors.
var (
	ErrMalformedRequest = errors.New("malformed request body")
	ErrRequestTooLarge  = errors.New("request body is too large")

	// ErrStagingFailed is returned when an uploaded file could not be copied
	// to the staging directory.
	ErrStagingFailed = errors.New("uploaded file could not be staged")
)
