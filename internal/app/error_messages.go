// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMalformedRequest is returned when the body cannot be decoded as
	// JSON or as a form.
	MsgMalformedRequest = "malformed request body"

	// MsgRequestTooLarge is returned when the body exceeds the upload limit.
	MsgRequestTooLarge = "request body is too large"

	MsgRouteNotFound    = "route not found"
	MsgMethodNotAllowed = "method not allowed"

	// Success messages.
	MsgUserRegistered = "user registered successfully"
	MsgUserLoggedIn   = "user logged in successfully"
	MsgUserFound      = "user found"
	MsgPostCreated    = "post created successfully"
	MsgPostUpdated    = "post updated successfully"
	MsgPostDeleted    = "post deleted successfully"
	MsgPostFound      = "post found"

	// Fallback messages for 5xx responses, one per operation.
	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
	MsgUserLookupFailed   = "user lookup failed"
	MsgPostCreationFailed = "post creation failed"
	MsgPostUpdateFailed   = "post update failed"
	MsgPostDeletionFailed = "post deletion failed"
	MsgPostLookupFailed   = "post lookup failed"
	MsgPostListingFailed  = "post listing failed"
)
