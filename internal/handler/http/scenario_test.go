// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAlice(t *testing.T, app *testApp) models.AuthResponse {
	t.Helper()

	rr := app.do(multipartRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"name":     "Alice",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "p@ss",
	}, formFile{field: fieldAvatar, filename: "me.png", content: "png-bytes"}))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[models.AuthResponse](t, rr)
}

func createPost(t *testing.T, app *testApp, token, title, content string) models.Post {
	t.Helper()

	rr := app.do(withBearer(multipartRequest(t, http.MethodPost, "/posts", map[string]string{
		"title":   title,
		"content": content,
	}), token))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[models.PostResponse](t, rr).Post
}

// ── Accounts ─────────────────────────────────────────────────────────────────

func TestScenario_RegisterLoginGetUser(t *testing.T) {
	app := newTestApp(t)

	// register
	registered := registerAlice(t, app)
	assert.Equal(t, "alice", registered.User.Username)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Contains(t, registered.User.Avatar, "https://cdn.example.com/")

	entries, err := os.ReadDir(app.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "staged avatar must be removed")

	// login
	rr := app.do(jsonRequest(t, http.MethodPost, "/auth/login", models.Credentials{
		Username: "alice", Email: "alice@example.com", Password: "p@ss",
	}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	loggedIn := decode[models.AuthResponse](t, rr)
	require.NotEmpty(t, loggedIn.AccessToken)
	assert.Equal(t, "Bearer "+loggedIn.AccessToken, rr.Header().Get("Authorization"))

	// profile
	rr = app.do(withBearer(jsonRequest(t, http.MethodGet, "/auth/"+registered.User.ID, nil), loggedIn.AccessToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Equal(t, "alice", raw["user"]["username"])
	assert.Equal(t, registered.User.ID, raw["user"]["id"])
	assert.NotContains(t, raw["user"], "password")
}

func TestScenario_RegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	registerAlice(t, app)

	rr := app.do(multipartRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"name": "Other", "username": "alice", "email": "other@example.com", "password": "x",
	}, formFile{field: fieldAvatar, filename: "o.png", content: "png"}))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "username is already taken", decode[models.ErrorResponse](t, rr).Message)
	assert.Len(t, app.gateway.uploaded, 1, "pre-check stops the second upload")
}

func TestScenario_RegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name  string
		req   *http.Request
		files int
	}{
		{
			name: "no avatar",
			req: multipartRequest(t, http.MethodPost, "/auth/register", map[string]string{
				"name": "Alice", "username": "alice", "email": "a@example.com", "password": "p@ss",
			}),
		},
		{
			name: "no password",
			req: multipartRequest(t, http.MethodPost, "/auth/register", map[string]string{
				"name": "Alice", "username": "alice", "email": "a@example.com",
			}, formFile{field: fieldAvatar, filename: "a.png", content: "png"}),
		},
		{
			name: "password longer than bcrypt accepts",
			req: multipartRequest(t, http.MethodPost, "/auth/register", map[string]string{
				"name": "Alice", "username": "alice", "email": "a@example.com", "password": strings.Repeat("p", 80),
			}, formFile{field: fieldAvatar, filename: "a.png", content: "png"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := app.do(tt.req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			body := decode[models.ErrorResponse](t, rr)
			assert.NotEmpty(t, body.Message)
			assert.Empty(t, body.Error, "no internal detail on 4xx")
		})
	}

	entries, err := os.ReadDir(app.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not stay staged")
	assert.Empty(t, app.gateway.uploaded)
}

func TestScenario_LoginFailures(t *testing.T) {
	app := newTestApp(t)
	registerAlice(t, app)

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "wrong password", credentials: models.Credentials{Username: "alice", Email: "alice@example.com", Password: "nope"}},
		{name: "wrong email", credentials: models.Credentials{Username: "alice", Email: "eve@example.com", Password: "p@ss"}},
		{name: "unknown user", credentials: models.Credentials{Username: "bob", Email: "bob@example.com", Password: "p@ss"}},
		{name: "missing field", credentials: models.Credentials{Username: "alice", Password: "p@ss"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := app.do(jsonRequest(t, http.MethodPost, "/auth/login", tt.credentials))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestScenario_GetUnknownUser(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)

	rr := app.do(withBearer(jsonRequest(t, http.MethodGet, "/auth/01928f3a-0000-7000-8000-00000000beef", nil), alice.AccessToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── Posts ────────────────────────────────────────────────────────────────────

func TestScenario_CreateGetAndListPosts(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)

	first := createPost(t, app, alice.AccessToken, "Hello", "World")
	second := createPost(t, app, alice.AccessToken, "Second", "Post")

	assert.Equal(t, alice.User.ID, first.Author)
	assert.Equal(t, "hello", first.Slug)

	// single post, no auth required
	rr := app.do(jsonRequest(t, http.MethodGet, "/posts/"+first.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decode[models.PostResponse](t, rr).Post
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "World", got.Content)
	assert.Equal(t, alice.User.ID, got.Author)

	// listing, newest first, with embedded author
	rr = app.do(withBearer(jsonRequest(t, http.MethodGet, "/posts/getAllPosts", nil), alice.AccessToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	all := decode[[]models.PostWithAuthor](t, rr)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, "alice", all[0].AuthorDetails.Username)

	// own posts
	rr = app.do(withBearer(jsonRequest(t, http.MethodGet, "/posts/fetch/mine", nil), alice.AccessToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Len(t, decode[models.MyPostsResponse](t, rr).MyPosts, 2)
}

func TestScenario_CreatePostWithCover(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)

	rr := app.do(withBearer(multipartRequest(t, http.MethodPost, "/posts", map[string]string{
		"title": "Hello", "content": "World",
	}, formFile{field: fieldCoverImage, filename: "cover.jpg", content: "jpg"}), alice.AccessToken))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	post := decode[models.PostResponse](t, rr).Post
	assert.Contains(t, post.CoverImage, ".jpg")
}

func TestScenario_CreatePostMissingField(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)

	rr := app.do(withBearer(multipartRequest(t, http.MethodPost, "/posts", map[string]string{
		"title": "Hello",
	}), alice.AccessToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScenario_UpdateOnlyContent(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)

	rr := app.do(withBearer(multipartRequest(t, http.MethodPost, "/posts", map[string]string{
		"title": "Hello", "content": "World",
	}, formFile{field: fieldCoverImage, filename: "cover.png", content: "png"}), alice.AccessToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := decode[models.PostResponse](t, rr).Post

	time.Sleep(2 * time.Millisecond)

	// PUT is currently served without authentication.
	rr = app.do(multipartRequest(t, http.MethodPut, "/posts/"+created.ID, map[string]string{"content": "Updated"}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[models.PostResponse](t, rr).Post
	assert.Equal(t, "Updated", updated.Content)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.CoverImage, updated.CoverImage)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestScenario_UpdateWithoutFields(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)
	post := createPost(t, app, alice.AccessToken, "Hello", "World")

	rr := app.do(multipartRequest(t, http.MethodPut, "/posts/"+post.ID, map[string]string{"title": ""}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScenario_UpdateBlankTitleIsIgnored(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)
	post := createPost(t, app, alice.AccessToken, "Hello", "World")

	rr := app.do(multipartRequest(t, http.MethodPut, "/posts/"+post.ID, map[string]string{
		"title": "   ", "content": "Updated",
	}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[models.PostResponse](t, rr).Post
	assert.Equal(t, "Hello", updated.Title)
	assert.Equal(t, "hello", updated.Slug)
	assert.Equal(t, "Updated", updated.Content)
}

func TestScenario_UpdateUnknownPost(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(multipartRequest(t, http.MethodPut, "/posts/01928f3b-0000-7000-8000-0000000000ff", map[string]string{"content": "x"}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestScenario_DeleteThenGet(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)
	post := createPost(t, app, alice.AccessToken, "Hello", "World")

	// DELETE is currently served without authentication.
	rr := app.do(jsonRequest(t, http.MethodDelete, "/posts/"+post.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "post deleted successfully", decode[models.MessageResponse](t, rr).Message)

	rr = app.do(jsonRequest(t, http.MethodGet, "/posts/"+post.ID, nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "post not found", decode[models.ErrorResponse](t, rr).Message)

	rr = app.do(jsonRequest(t, http.MethodDelete, "/posts/"+post.ID, nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ── Authorization ────────────────────────────────────────────────────────────

func TestScenario_ProtectedRoutesRejectBadTokens(t *testing.T) {
	app := newTestApp(t)
	alice := registerAlice(t, app)

	expired, err := utils.GenerateJWTToken(alice.User.Identity(), testIssuer, -time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(alice.User.Identity(), testIssuer, time.Hour, "another-key")
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{name: "no header", header: "", wantMessage: ErrEmptyAuthorizationHeader.Error()},
		{name: "wrong scheme", header: "Basic " + alice.AccessToken, wantMessage: ErrInvalidAuthorizationHeader.Error()},
		{name: "missing token", header: "Bearer ", wantMessage: ErrInvalidAuthorizationHeader.Error()},
		{name: "expired token", header: "Bearer " + expired.String(), wantMessage: "token is expired"},
		{name: "foreign key", header: "Bearer " + foreign.String(), wantMessage: "token is invalid"},
		{name: "garbage", header: "Bearer abc.def.ghi", wantMessage: "token is invalid"},
	}

	for _, tt := range tests {
		for _, target := range []string{"/posts/getAllPosts", "/posts/fetch/mine", "/auth/" + alice.User.ID} {
			t.Run(tt.name+" "+target, func(t *testing.T) {
				req := jsonRequest(t, http.MethodGet, target, nil)
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}

				rr := app.do(req)

				assert.Equal(t, http.StatusUnauthorized, rr.Code)
				assert.Equal(t, tt.wantMessage, decode[models.ErrorResponse](t, rr).Message)
			})
		}
	}
}

func TestScenario_CreatePostRequiresToken(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(multipartRequest(t, http.MethodPost, "/posts", map[string]string{"title": "Hello", "content": "World"}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestScenario_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(jsonRequest(t, http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "route not found", decode[models.ErrorResponse](t, rr).Message)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
