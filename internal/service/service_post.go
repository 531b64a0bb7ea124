// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/gosimple/slug"
)

// postService is the concrete implementation of PostService.
type postService struct {
	postRepository store.PostRepository
	mediaService   MediaService
	idGenerator    *utils.UUIDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

// NewPostService constructs a PostService backed by postRepository.
// Cover images are uploaded through mediaService.
func NewPostService(postRepository store.PostRepository, mediaService MediaService, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		mediaService:   mediaService,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreatePost uploads the optional cover image and stores a new post authored
// by newPost.AuthorID. The uploaded cover is discarded if the post cannot be
// stored.
func (p *postService) CreatePost(ctx context.Context, newPost models.NewPost) (models.Post, error) {
	log := logger.FromContext(ctx)

	var cover models.Media
	if newPost.CoverImagePath != "" {
		media, err := p.mediaService.Upload(ctx, newPost.CoverImagePath)
		if err != nil {
			return models.Post{}, err
		}
		cover = media
	}

	now := p.now().UTC()
	post := models.Post{
		ID:         p.idGenerator.Generate(),
		Title:      newPost.Title,
		Content:    newPost.Content,
		CoverImage: cover.URL,
		Slug:       slug.Make(newPost.Title),
		Author:     newPost.AuthorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		p.mediaService.Discard(ctx, cover)
		log.Err(err).Str("func", "*postService.CreatePost").Str("author", newPost.AuthorID).Msg("post creation ended with error")
		if errors.Is(err, store.ErrPostNotSaved) {
			return models.Post{}, fmt.Errorf("%w: %w", ErrPostNotCreated, err)
		}
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// UpdatePost applies the non-empty fields of update to the stored post.
//
// Empty strings are treated as absent. The cover image is uploaded only after
// the post is known to exist, and discarded again if the update cannot be
// stored.
func (p *postService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	patch := models.PostPatch{
		Title:   nonEmpty(update.Title),
		Content: nonEmpty(update.Content),
	}

	var cover models.Media
	if update.CoverImagePath != "" {
		cover, err = p.mediaService.Upload(ctx, update.CoverImagePath)
		if err != nil {
			return models.Post{}, err
		}
		patch.CoverImage = &cover.URL
	}

	updatedPost, err := p.postRepository.UpdatePost(ctx, patch.Apply(post, p.now().UTC()))
	if err != nil {
		p.mediaService.Discard(ctx, cover)
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postService.UpdatePost").Str("post_id", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updatedPost, nil
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*postService.DeletePost").Str("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*postService.GetPost").Str("post_id", postID).Msg("post search ended with error")
		return models.Post{}, fmt.Errorf("post search ended with error: %w", err)
	}

	return post, nil
}

// GetAllPosts returns every post with its author embedded, newest first.
// Posts whose author no longer exists are left out.
func (p *postService) GetAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts, err := p.postRepository.FindAllPostsWithAuthors(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.GetAllPosts").Msg("post listing ended with error")
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}

	if posts == nil {
		posts = []models.PostWithAuthor{}
	}

	return posts, nil
}

// GetUserPosts returns the posts authored by userID, newest first.
func (p *postService) GetUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	posts, err := p.postRepository.FindPostsByAuthor(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.GetUserPosts").Str("author", userID).Msg("post listing ended with error")
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// nonEmpty returns s unless it points to a blank string.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
