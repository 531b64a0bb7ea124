// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every failed request.
// Error carries internal detail and is only filled for 5xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is a body that only carries a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

// UserResponse wraps a single user profile.
type UserResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// PostResponse wraps a single post.
type PostResponse struct {
	Post    Post   `json:"post"`
	Message string `json:"message"`
}

// MyPostsResponse lists the posts of the authenticated user.
type MyPostsResponse struct {
	MyPosts []Post `json:"myPosts"`
}
