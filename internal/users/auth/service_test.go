// Copyright (c) 2026 Bookly. All rights reserved.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
)

// # Test Fakes

type fakeUserRepository struct {
	users map[string]*User // keyed by ID
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*User{}}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User with this email")
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User with this username")
}

func (f *fakeUserRepository) Create(_ context.Context, user *User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := f.users[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (f *fakeUserRepository) MarkVerified(_ context.Context, userID string) error {
	if user, ok := f.users[userID]; ok {
		user.IsVerified = true
	}
	return nil
}

type fakeSessionRepository struct {
	sessions map[string]*Session // keyed by ID
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*Session{}}
}

func (f *fakeSessionRepository) Create(_ context.Context, session *Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	for _, session := range f.sessions {
		if session.TokenHash == tokenHash && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, apperr.NotFound("Active session")
}

func (f *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for id, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func (f *fakeSessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for id, session := range f.sessions {
		if session.UserID == userID && id != currentSessionID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func (f *fakeSessionRepository) DeleteExpired(_ context.Context) error {
	for id, session := range f.sessions {
		if session.ExpiresAt.Before(time.Now()) {
			delete(f.sessions, id)
		}
	}
	return nil
}

type fakeTokenRepository struct {
	tokens map[string]string // token -> userID
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{tokens: map[string]string{}}
}

func (f *fakeTokenRepository) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenRepository) Get(_ context.Context, token string) (string, error) {
	if userID, ok := f.tokens[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Token")
}

func (f *fakeTokenRepository) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type stubTokenProvider struct{}

func (stubTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

type serviceFixture struct {
	service  *Service
	users    *fakeUserRepository
	sessions *fakeSessionRepository
	resets   *fakeTokenRepository
	verifies *fakeTokenRepository
}

func newServiceFixture() *serviceFixture {
	fixture := &serviceFixture{
		users:    newFakeUserRepository(),
		sessions: newFakeSessionRepository(),
		resets:   newFakeTokenRepository(),
		verifies: newFakeTokenRepository(),
	}
	fixture.service = NewService(fixture.users, fixture.sessions, fixture.resets, fixture.verifies, stubTokenProvider{})
	return fixture
}

func (f *serviceFixture) seedUser(t *testing.T, username, email, password string) *User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &User{
		ID:           "user-" + username,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         sec.RoleMember,
	}
	f.users.users[user.ID] = user
	return user
}

// # Registration

func TestService_Register(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "existing", "existing@bookly.app", "password123")

	tests := []struct {
		name     string
		input    RegisterInput
		wantCode string
	}{
		{
			name:  "new_account",
			input: RegisterInput{Username: "newreader", Email: "new@bookly.app", Password: "password123"},
		},
		{
			name:     "duplicate_email",
			input:    RegisterInput{Username: "another", Email: "existing@bookly.app", Password: "password123"},
			wantCode: "CONFLICT",
		},
		{
			name:     "duplicate_username",
			input:    RegisterInput{Username: "existing", Email: "other@bookly.app", Password: "password123"},
			wantCode: "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := fixture.service.Register(context.Background(), tt.input)

			if tt.wantCode != "" {
				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, tt.wantCode, appError.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, sec.RoleMember, user.Role)
			assert.False(t, user.IsVerified)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
		})
	}
}

func TestService_Register_StoresVerificationToken(t *testing.T) {
	fixture := newServiceFixture()

	user, err := fixture.service.Register(context.Background(), RegisterInput{
		Username: "reader",
		Email:    "reader@bookly.app",
		Password: "password123",
	})
	require.NoError(t, err)

	require.Len(t, fixture.verifies.tokens, 1)
	for _, userID := range fixture.verifies.tokens {
		assert.Equal(t, user.ID, userID)
	}
}

func TestService_CheckUsername(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "taken", "taken@bookly.app", "password123")

	assert.False(t, fixture.service.CheckUsername(context.Background(), "taken"))
	assert.True(t, fixture.service.CheckUsername(context.Background(), "free"))
}

// # Login & Sessions

func TestService_Login(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.seedUser(t, "reader", "reader@bookly.app", "password123")

	tests := []struct {
		name    string
		login   string
		pass    string
		wantErr bool
	}{
		{"by_email", "reader@bookly.app", "password123", false},
		{"by_username", "reader", "password123", false},
		{"wrong_password", "reader", "nope-nope-nope", true},
		{"unknown_identity", "ghost", "password123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := fixture.service.Login(context.Background(), LoginInput{Login: tt.login, Password: tt.pass})

			if tt.wantErr {
				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, "UNAUTHORIZED", appError.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "jwt-for-"+user.ID, session.AccessToken)
			assert.NotEmpty(t, session.RefreshToken)
			assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))
		})
	}
}

func TestService_RefreshSession_RotatesToken(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "reader", "reader@bookly.app", "password123")

	session, err := fixture.service.Login(context.Background(), LoginInput{Login: "reader", Password: "password123"})
	require.NoError(t, err)

	rotated, err := fixture.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "ip")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The original token must be dead after rotation (replay protection).
	_, err = fixture.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "ip")
	require.Error(t, err)
}

func TestService_Logout_IsIdempotent(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "reader", "reader@bookly.app", "password123")

	session, err := fixture.service.Login(context.Background(), LoginInput{Login: "reader", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
	// Second logout with the same (now unknown) token still succeeds.
	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, fixture.sessions.sessions)
}

// # Password Recovery

func TestService_PasswordResetFlow(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.seedUser(t, "reader", "reader@bookly.app", "oldpassword1")

	// Establish a session that must be revoked after the reset.
	_, err := fixture.service.Login(context.Background(), LoginInput{Login: "reader", Password: "oldpassword1"})
	require.NoError(t, err)

	token, err := fixture.service.RequestPasswordReset(context.Background(), user.Email)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, fixture.service.ResetPassword(context.Background(), token, "newpassword1"))

	assert.True(t, sec.CheckPasswordHash("newpassword1", user.PasswordHash))
	assert.Empty(t, fixture.sessions.sessions)
	assert.Empty(t, fixture.resets.tokens)
}

func TestService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fixture := newServiceFixture()

	// No error and no token: unknown emails must not be observable.
	token, err := fixture.service.RequestPasswordReset(context.Background(), "ghost@bookly.app")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, fixture.resets.tokens)
}

func TestService_VerifyEmail(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.seedUser(t, "reader", "reader@bookly.app", "password123")
	require.NoError(t, fixture.verifies.Set(context.Background(), "verify-token", user.ID, time.Hour))

	require.NoError(t, fixture.service.VerifyEmail(context.Background(), "verify-token"))
	assert.True(t, user.IsVerified)
	assert.Empty(t, fixture.verifies.tokens)
}
