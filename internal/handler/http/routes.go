// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.With(h.auth).Get("/{userId}", h.getUser)
	})

	router.Route("/posts", func(r chi.Router) {
		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createPost)
			r.Get("/getAllPosts", h.getAllPosts)
			r.Get("/fetch/mine", h.getMyPosts)
		})

		// TODO: require auth and authorship on PUT and DELETE once the API
		// owners agree to break existing clients.
		r.Put("/{postId}", h.updatePost)
		r.Delete("/{postId}", h.deletePost)
		r.Get("/{postId}", h.getPost)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithStatus(w, r, http.StatusNotFound, app.MsgRouteNotFound, nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithStatus(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed, nil)
	})

	return router
}
