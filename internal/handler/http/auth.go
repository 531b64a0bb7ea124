// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// register handles POST /auth/register.
//
// The body is a multipart form with name, username, email, password and an
// avatar file. Answers 201 with the user and an access token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := h.stageForm(w, r, fieldAvatar)
	defer form.cleanup(ctx)
	if err != nil {
		respondWithError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.RegisterRequest{
		Name:       form.value("name"),
		Username:   form.value("username"),
		Email:      form.value("email"),
		Password:   form.value("password"),
		AvatarPath: form.file(fieldAvatar),
	})
	if err != nil {
		respondWithError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		respondWithError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	respond(w, r, models.AuthResponse{
		User:        registeredUser,
		AccessToken: token.SignedString,
		Message:     app.MsgUserRegistered,
	}, http.StatusCreated)
}

// login handles POST /auth/login. The body is JSON or a form with username,
// email and password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials, err := h.decodeCredentials(w, r)
	if err != nil {
		respondWithError(w, r, err, app.MsgLoginFailed)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		respondWithError(w, r, err, app.MsgLoginFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		respondWithError(w, r, err, app.MsgLoginFailed)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	respond(w, r, models.AuthResponse{
		User:        foundUser,
		AccessToken: token.SignedString,
		Message:     app.MsgUserLoggedIn,
	}, http.StatusOK)
}

func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	if !isJSON(r) {
		form, err := h.stageForm(w, r)
		if err != nil {
			return models.Credentials{}, err
		}
		return models.Credentials{
			Username: form.value("username"),
			Email:    form.value("email"),
			Password: form.value("password"),
		}, nil
	}

	var credentials models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&credentials); err != nil {
		return models.Credentials{}, wrapBodyError(err)
	}
	return credentials, nil
}

// getUser handles GET /auth/{userId}. The password hash is never serialised.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondWithError(w, r, err, app.MsgUserLookupFailed)
		return
	}

	respond(w, r, models.UserResponse{User: user, Message: app.MsgUserFound}, http.StatusOK)
}
