// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Requests
// ─────────────────────────────────────────────

type formFile struct {
	field    string
	filename string
	content  string
}

// multipartRequest builds a multipart/form-data request.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

// ─────────────────────────────────────────────
// In-memory collaborators
// ─────────────────────────────────────────────

type memoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return models.User{}, store.ErrUsernameAlreadyExists
		}
	}
	m.users = append(m.users, user)
	return user, nil
}

func (m *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

type memoryPostRepository struct {
	mu    sync.Mutex
	posts map[string]models.Post
	users *memoryUserRepository
}

func (m *memoryPostRepository) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts[post.ID] = post
	return post, nil
}

func (m *memoryPostRepository) FindPostByID(_ context.Context, postID string) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[postID]
	if !ok {
		return models.Post{}, store.ErrPostNotFound
	}
	return post, nil
}

func (m *memoryPostRepository) UpdatePost(_ context.Context, post models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[post.ID]; !ok {
		return models.Post{}, store.ErrPostNotFound
	}
	m.posts[post.ID] = post
	return post, nil
}

func (m *memoryPostRepository) DeletePost(_ context.Context, postID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[postID]; !ok {
		return store.ErrPostNotFound
	}
	delete(m.posts, postID)
	return nil
}

func (m *memoryPostRepository) FindAllPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.PostWithAuthor
	for _, p := range m.posts {
		author, err := m.users.FindUserByID(ctx, p.Author)
		if err != nil {
			continue
		}
		author.Password = ""
		result = append(result, models.PostWithAuthor{Post: p, AuthorDetails: author})
	}
	slices.SortFunc(result, func(a, b models.PostWithAuthor) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return result, nil
}

func (m *memoryPostRepository) FindPostsByAuthor(_ context.Context, authorID string) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.Post
	for _, p := range m.posts {
		if p.Author == authorID {
			result = append(result, p)
		}
	}
	return result, nil
}

// fakeGateway accepts every staged file and records deletions.
type fakeGateway struct {
	mu        sync.Mutex
	uploaded  []string
	destroyed []string
}

func (g *fakeGateway) Upload(_ context.Context, localPath string) (models.Media, error) {
	if _, err := os.Stat(localPath); err != nil {
		return models.Media{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := filepath.Base(localPath)
	g.uploaded = append(g.uploaded, id)
	return models.Media{URL: "https://cdn.example.com/" + id, PublicID: id}, nil
}

func (g *fakeGateway) Destroy(_ context.Context, publicID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.destroyed = append(g.destroyed, publicID)
	return nil
}

// ─────────────────────────────────────────────
// Application under test
// ─────────────────────────────────────────────

const (
	testSignKey = "scenario-sign-key"
	testIssuer  = "go-blog-test"
)

type testApp struct {
	router  http.Handler
	gateway *fakeGateway
	tempDir string
}

// newTestApp wires the real services and router over in-memory stores.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := &memoryUserRepository{}
	posts := &memoryPostRepository{posts: map[string]models.Post{}, users: users}
	gateway := &fakeGateway{}

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     testSignKey,
			TokenIssuer:      testIssuer,
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
		},
		Storage: config.Storage{
			Files: config.Files{TempDir: t.TempDir(), MaxUploadSize: 1 << 20},
		},
		Server: config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second},
	}

	services := service.NewServices(&store.Storages{UserRepository: users, PostRepository: posts}, gateway, cfg, logger.Nop())
	h := NewHandler(services, cfg, logger.Nop())

	return &testApp{router: h.Init(), gateway: gateway, tempDir: cfg.Storage.Files.TempDir}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}
