// Copyright (c) 2026 Bookly. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidol/bookly/internal/platform/ctxutil"
	"github.com/tidol/bookly/internal/platform/middleware"
	"github.com/tidol/bookly/internal/platform/sec"
)

// stubVerifier accepts exactly one token string.
type stubVerifier struct {
	valid  string
	claims *sec.AuthClaims
}

func (v *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == v.valid {
		return v.claims, nil
	}
	return nil, errors.New("bad token")
}

func echoClaims(t *testing.T, captured **sec.AuthClaims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*captured = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers anonymous passthrough, malformed headers, and
claim injection for valid bearer tokens.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{
		valid:  "good-token",
		claims: &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleMember)},
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantClaims bool
	}{
		{"anonymous_passthrough", "", http.StatusOK, false},
		{"malformed_header", "NotBearer", http.StatusUnauthorized, false},
		{"invalid_token", "Bearer wrong", http.StatusUnauthorized, false},
		{"valid_token", "Bearer good-token", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *sec.AuthClaims
			handler := middleware.Authenticate(verifier)(echoClaims(t, &captured))

			request := httptest.NewRequest("GET", "/books", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantClaims {
				assert.NotNil(t, captured)
				assert.Equal(t, "user-1", captured.UserID)
			} else {
				assert.Nil(t, captured)
			}
		})
	}
}

/*
TestRequireAuth verifies that anonymous requests are rejected with 401.
*/
func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireAuth(next)

	// Anonymous
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/history", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated
	request := httptest.NewRequest("GET", "/history", nil)
	ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "user-1"})
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole verifies the role gate around moderator-only endpoints.
*/
func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireRole(sec.RoleModerator)(next)

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"member_blocked", &sec.AuthClaims{UserID: "u", Role: string(sec.RoleMember)}, http.StatusForbidden},
		{"moderator_allowed", &sec.AuthClaims{UserID: "u", Role: string(sec.RoleModerator)}, http.StatusOK},
		{"admin_allowed", &sec.AuthClaims{UserID: "u", Role: string(sec.RoleAdmin)}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("POST", "/genres", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
