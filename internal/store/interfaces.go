// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Usernames are unique.
type UserRepository interface {
	// CreateUser inserts user as given. A duplicate username yields
	// ErrUsernameAlreadyExists, even when two inserts race.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	// UpdatePost overwrites the mutable columns of the stored post with the
	// values in post.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	// FindAllPostsWithAuthors returns every post that has an existing author,
	// newest first.
	FindAllPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error)
	// FindPostsByAuthor returns the posts of one author, newest first.
	FindPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
}

// ErrorClassificator interprets dialect specific driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
