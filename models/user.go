// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the application-assigned unique identifier (UUIDv7 string).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`

	// Password holds the bcrypt hash once the record went through the write
	// path. It is never serialised.
	Password string `json:"-"`

	// Avatar is the public URL of the uploaded avatar image, or empty.
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the token claims that identify u.
func (u User) Identity() Claims {
	return Claims{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
