// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a blog entry written by a single author.
type Post struct {
	// ID is the application-assigned unique identifier (UUIDv7 string).
	ID string `json:"id"`

	// Title is the required headline of the post.
	Title string `json:"title"`

	// Content is the required body of the post.
	Content string `json:"content"`

	// CoverImage is the public URL of the cover image, or empty.
	CoverImage string `json:"coverImage"`

	// Slug is a URL-friendly form of Title.
	Slug string `json:"slug"`

	// Author is the ID of the user who created the post. It is taken from
	// the authenticated identity and is not checked against the users table.
	Author string `json:"author"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostWithAuthor is a post joined with the public profile of its author.
type PostWithAuthor struct {
	Post
	AuthorDetails User `json:"authorDetails"`
}
