// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest carries the fields of a registration form.
type RegisterRequest struct {
	Name     string
	Username string
	Email    string
	Password string

	// AvatarPath is the local path of the staged avatar file.
	AvatarPath string
}

// Credentials carries the fields of a login request.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewPost carries the fields required to create a post.
type NewPost struct {
	Title   string
	Content string

	// CoverImagePath is the local path of the staged cover image, or empty
	// when no file was sent.
	CoverImagePath string

	// AuthorID is the ID taken from the authenticated identity.
	AuthorID string
}

// PostUpdate carries the optional fields of an update request.
// Nil pointers and an empty CoverImagePath mean "leave unchanged".
type PostUpdate struct {
	Title   *string
	Content *string

	// CoverImagePath is the local path of a newly staged cover image.
	CoverImagePath string
}

// IsEmpty reports whether the update carries no field at all.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.CoverImagePath == ""
}
