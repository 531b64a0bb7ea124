// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validator failure. The concrete
	// validator error is wrapped next to it.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUsernameTaken is returned when registration hits an existing
	// username, either at the pre-check or at write time.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrUserNotFound is returned when no user matches the given id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongCredentials is returned by Login when the email does not belong
	// to the user.
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrWrongPassword is returned by Login when the password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrRegistrationFailed is returned when the user could not be stored.
	ErrRegistrationFailed = errors.New("registration failed")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	// ErrPostNotFound is returned when no post matches the given id.
	ErrPostNotFound = errors.New("post not found")

	// ErrPostNotCreated is returned when the post could not be stored.
	ErrPostNotCreated = errors.New("post not created")

	// ErrMediaUploadFailed is returned when the media host rejected a file or
	// could not be reached.
	ErrMediaUploadFailed = errors.New("media upload failed")

	// ErrNoIdentity is returned when an operation needs the authenticated
	// identity but the context carries none.
	ErrNoIdentity = errors.New("no authenticated identity in context")
)
