// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	alice := models.Claims{ID: "u-1", Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		authHeader     string
		setup          func(m *mock.MockAuthService)
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:           "no space after scheme → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:           "basic scheme → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "valid token → next called",
			authHeader: "Bearer valid-token",
			setup: func(m *mock.MockAuthService) {
				m.EXPECT().ParseToken(gomock.Any(), "valid-token").Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "expired token → 401",
			authHeader: "Bearer expired-token",
			setup: func(m *mock.MockAuthService) {
				m.EXPECT().ParseToken(gomock.Any(), "expired-token").Return(models.Claims{}, service.ErrTokenIsExpired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   service.ErrTokenIsExpired.Error(),
		},
		{
			name:       "invalid token → 401",
			authHeader: "Bearer bad-token",
			setup: func(m *mock.MockAuthService) {
				m.EXPECT().ParseToken(gomock.Any(), "bad-token").Return(models.Claims{}, service.ErrTokenIsInvalid)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   service.ErrTokenIsInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := mock.NewMockAuthService(ctrl)
			if tt.setup != nil {
				tt.setup(authSvc)
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, decode[models.ErrorResponse](t, rr).Message)
			}
		})
	}
}

// ---- Identity is stored in the context ----

func TestAuth_IdentityInContext(t *testing.T) {
	expected := models.Claims{ID: "u-42", Username: "bob", Email: "bob@example.com"}

	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "some-token").Return(expected, nil)

	h := newHandlerWithAuthService(authSvc)

	var got models.Claims
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found)
	assert.Equal(t, expected.ID, got.ID)
	assert.Equal(t, expected.Username, got.Username)
	assert.Equal(t, expected.Email, got.Email)
}

// ---- The original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "token").Return(models.Claims{ID: "u-1"}, nil)

	h := newHandlerWithAuthService(authSvc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
	_, found := utils.GetIdentityFromContext(req.Context())
	assert.False(t, found)
}
