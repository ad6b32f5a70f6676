// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/agromatch/internal/service"
	"github.com/MKhiriev/agromatch/internal/utils"
	"github.com/MKhiriev/agromatch/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{Claims: models.Claims{ID: "u-42", Email: "ann@farm.io"}}

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		expectedError  string
		nextCalled     bool
	}{
		{
			name:           "no Authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token not provided",
		},
		{
			name:           "not a bearer header",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token not provided",
		},
		{
			name:           "bearer without token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token not provided",
		},
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
				if s != "valid-token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "expired or tampered token",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := tt.parseTokenFn
			if parse == nil {
				parse = func(context.Context, string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}
			h := newHandlerWithAuth(t, &mockAuthService{parseTokenFn: parse})

			nextCalled := false
			var claims models.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, _ = utils.GetClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			require.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, "u-42", claims.ID)
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr).Error)
			}
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{Claims: models.Claims{ID: "u-1"}}, nil
		},
	})

	middleware := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	middleware.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}
