// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRegisterFields = errors.New("name, username, email and password are required")
	ErrMissingAvatar         = errors.New("avatar file is required")
	ErrPasswordTooLong       = errors.New("password must not exceed 72 bytes")
	ErrMissingLoginFields    = errors.New("username, email and password are required")
	ErrMissingPostFields     = errors.New("title and content are required")
	ErrMissingAuthor         = errors.New("post author is required")
	ErrNoUpdateFields        = errors.New("at least one of title, content or cover image must be provided")
)
