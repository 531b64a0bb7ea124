// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post. An insert that affects no rows yields
// [ErrPostNotSaved].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.execAffectingOne(ctx, "*postRepository.CreatePost", query, args, ErrPostNotSaved); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// FindPostByID returns the post with the given id or [ErrPostNotFound].
func (p *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(postID) {
		return models.Post{}, ErrPostNotFound
	}

	query, args, err := buildFindPostByIDQuery(p.builder, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.FindPostByID").
			Str("post_id", postID).
			Bool("retryable", p.isRetryable(err)).
			Msg("failed to find post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// UpdatePost stores the mutable fields of post. No matching row yields
// [ErrPostNotFound].
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(post.ID) {
		return models.Post{}, ErrPostNotFound
	}

	query, args, err := buildUpdatePostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.execAffectingOne(ctx, "*postRepository.UpdatePost", query, args, ErrPostNotFound); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost removes the post with the given id. No matching row yields
// [ErrPostNotFound].
func (p *postRepository) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(postID) {
		return ErrPostNotFound
	}

	query, args, err := buildDeletePostQuery(p.builder, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffectingOne(ctx, "*postRepository.DeletePost", query, args, ErrPostNotFound)
}

// FindAllPostsWithAuthors returns every post joined with its author, newest
// first.
func (p *postRepository) FindAllPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsWithAuthorsQuery(p.builder)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindAllPostsWithAuthors").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.FindAllPostsWithAuthors").
			Bool("retryable", p.isRetryable(err)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.PostWithAuthor, 0, 16)
	for rows.Next() {
		var item models.PostWithAuthor
		scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Content,
			&item.CoverImage,
			&item.Slug,
			&item.Author,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.AuthorDetails.ID,
			&item.AuthorDetails.Name,
			&item.AuthorDetails.Username,
			&item.AuthorDetails.Email,
			&item.AuthorDetails.Avatar,
			&item.AuthorDetails.CreatedAt,
			&item.AuthorDetails.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.FindAllPostsWithAuthors").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.FindAllPostsWithAuthors").Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// FindPostsByAuthor returns the posts written by authorID, newest first.
func (p *postRepository) FindPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsByAuthorQuery(p.builder, authorID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByAuthor").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.FindPostsByAuthor").
			Str("author", authorID).
			Bool("retryable", p.isRetryable(err)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Post, 0, 16)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.FindPostsByAuthor").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByAuthor").Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// execAffectingOne executes a DML statement and returns noRowsErr when it
// affected nothing.
func (p *postRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any, noRowsErr error) error {
	log := logger.FromContext(ctx)

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Bool("retryable", p.isRetryable(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return noRowsErr
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CoverImage,
		&post.Slug,
		&post.Author,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}
