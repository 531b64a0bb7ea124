// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

type PostService interface {
	CreatePost(ctx context.Context, post models.NewPost) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	GetPost(ctx context.Context, postID string) (models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.PostWithAuthor, error)
	GetUserPosts(ctx context.Context, userID string) ([]models.Post, error)
}

// MediaService moves staged request files to the media host.
type MediaService interface {
	// Upload sends the file at localPath to the media host. The local file is
	// removed afterwards whether the upload succeeded or not.
	Upload(ctx context.Context, localPath string) (models.Media, error)

	// Discard deletes media whose owning record could not be stored.
	// Failures are logged, not returned.
	Discard(ctx context.Context, media models.Media)
}
