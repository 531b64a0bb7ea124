// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUploadFailed wraps every failure of [MediaGateway.Upload].
	ErrUploadFailed = errors.New("media upload failed")
	// ErrDestroyFailed wraps every failure of [MediaGateway.Destroy].
	ErrDestroyFailed = errors.New("media destroy failed")
)

// Errors mapped from the media host's HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("media host rejected credentials")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("media host internal error")
)
