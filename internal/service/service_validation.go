// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// authValidationService rejects incomplete registration and login requests
// before they reach the wrapped AuthService.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &authValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *authValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authValidationService.RegisterUser").Msg("invalid registration request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *authValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authValidationService.Login").Msg("invalid login request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *authValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *authValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *authValidationService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *authValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// postValidationService checks post payloads before they reach the wrapped
// PostService. Reads and deletes pass straight through.
type postValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &postValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *postValidationService) CreatePost(ctx context.Context, post models.NewPost) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*postValidationService.CreatePost").Msg("invalid post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, post)
}

func (v *postValidationService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*postValidationService.UpdatePost").Msg("invalid post update")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdatePost(ctx, postID, update)
}

func (v *postValidationService) DeletePost(ctx context.Context, postID string) error {
	return v.inner.DeletePost(ctx, postID)
}

func (v *postValidationService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *postValidationService) GetAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	return v.inner.GetAllPosts(ctx)
}

func (v *postValidationService) GetUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	return v.inner.GetUserPosts(ctx, userID)
}

func (v *postValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}
