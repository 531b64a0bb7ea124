// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "name", "username", "email", "password", "avatar", "created_at", "updated_at"}
	postColumns = []string{"id", "title", "content", "cover_image", "slug", "author", "created_at", "updated_at"}
)

// qualified prefixes every column with alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Username, user.Email, user.Password, user.Avatar, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildFindUserQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildInsertPostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return sb.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Content, post.CoverImage, post.Slug, post.Author, post.CreatedAt, post.UpdatedAt).
		ToSql()
}

func buildFindPostByIDQuery(sb sq.StatementBuilderType, postID string) (string, []any, error) {
	return sb.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

// buildUpdatePostQuery writes every mutable column of post. Merging the
// patch into the stored record happens before this call.
func buildUpdatePostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return sb.Update(post.TableName()).
		Set("title", post.Title).
		Set("content", post.Content).
		Set("cover_image", post.CoverImage).
		Set("slug", post.Slug).
		Set("updated_at", post.UpdatedAt).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func buildDeletePostQuery(sb sq.StatementBuilderType, postID string) (string, []any, error) {
	return sb.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

// buildSelectPostsWithAuthorsQuery joins every post with its author. Posts
// whose author no longer exists are left out. Newest first.
func buildSelectPostsWithAuthorsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	columns := append(qualified("p", postColumns),
		"u.id", "u.name", "u.username", "u.email", "u.avatar", "u.created_at", "u.updated_at")

	return sb.Select(columns...).
		From("posts p").
		Join("users u ON u.id = p.author").
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
}

func buildSelectPostsByAuthorQuery(sb sq.StatementBuilderType, authorID string) (string, []any, error) {
	return sb.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"author": authorID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}
