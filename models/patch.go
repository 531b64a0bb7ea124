// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/gosimple/slug"
)

// PostPatch is a partial modification of a post.
// Only non-nil fields are applied.
type PostPatch struct {
	Title      *string
	Content    *string
	CoverImage *string
}

// IsEmpty reports whether p changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.CoverImage == nil
}

// Apply returns a copy of post with every non-nil field of p written over it
// and UpdatedAt set to now. The slug follows the title. ID, Author and
// CreatedAt are never touched.
func (p PostPatch) Apply(post Post, now time.Time) Post {
	if p.Title != nil {
		post.Title = *p.Title
		post.Slug = slug.Make(*p.Title)
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.CoverImage != nil {
		post.CoverImage = *p.CoverImage
	}

	post.UpdatedAt = now

	return post
}
