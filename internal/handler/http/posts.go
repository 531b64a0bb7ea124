// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// createPost handles POST /posts. The author is the authenticated user.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		respondWithError(w, r, service.ErrNoIdentity, "")
		return
	}

	form, err := h.stageForm(w, r, fieldCoverImage)
	defer form.cleanup(ctx)
	if err != nil {
		respondWithError(w, r, err, app.MsgPostCreationFailed)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, models.NewPost{
		Title:          form.value("title"),
		Content:        form.value("content"),
		CoverImagePath: form.file(fieldCoverImage),
		AuthorID:       identity.ID,
	})
	if err != nil {
		respondWithError(w, r, err, app.MsgPostCreationFailed)
		return
	}

	logger.FromRequest(r).Info().Str("post_id", post.ID).Str("author", post.Author).Msg("post created")

	respond(w, r, models.PostResponse{Post: post, Message: app.MsgPostCreated}, http.StatusOK)
}

// updatePost handles PUT /posts/{postId}. Any of title, content and
// coverImage may be sent; absent and empty fields are left unchanged.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := h.stageForm(w, r, fieldCoverImage)
	defer form.cleanup(ctx)
	if err != nil {
		respondWithError(w, r, err, app.MsgPostUpdateFailed)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, chi.URLParam(r, "postId"), models.PostUpdate{
		Title:          form.optional("title"),
		Content:        form.optional("content"),
		CoverImagePath: form.file(fieldCoverImage),
	})
	if err != nil {
		respondWithError(w, r, err, app.MsgPostUpdateFailed)
		return
	}

	respond(w, r, models.PostResponse{Post: post, Message: app.MsgPostUpdated}, http.StatusOK)
}

// deletePost handles DELETE /posts/{postId}.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	if err := h.services.PostService.DeletePost(r.Context(), postID); err != nil {
		respondWithError(w, r, err, app.MsgPostDeletionFailed)
		return
	}

	logger.FromRequest(r).Info().Str("post_id", postID).Msg("post deleted")

	respond(w, r, models.MessageResponse{Message: app.MsgPostDeleted}, http.StatusOK)
}

// getPost handles GET /posts/{postId}.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		respondWithError(w, r, err, app.MsgPostLookupFailed)
		return
	}

	respond(w, r, models.PostResponse{Post: post, Message: app.MsgPostFound}, http.StatusOK)
}

// getAllPosts handles GET /posts/getAllPosts. The body is a bare array of
// posts with their authors embedded, newest first.
func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.GetAllPosts(r.Context())
	if err != nil {
		respondWithStatus(w, r, http.StatusInternalServerError, app.MsgPostListingFailed, err)
		return
	}

	respond(w, r, posts, http.StatusOK)
}

// getMyPosts handles GET /posts/fetch/mine. Every failure is answered with 400.
func (h *Handler) getMyPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, _ := utils.GetIdentityFromContext(ctx)

	posts, err := h.services.PostService.GetUserPosts(ctx, identity.ID)
	if err != nil {
		respondWithStatus(w, r, http.StatusBadRequest, app.MsgPostListingFailed, err)
		return
	}

	respond(w, r, models.MyPostsResponse{MyPosts: posts}, http.StatusOK)
}
