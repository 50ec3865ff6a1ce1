// Copyright (c) 2026 Bookly. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidol/bookly/internal/platform/sec"
)

/*
TestHashPassword verifies bcrypt round-tripping and rejection of wrong inputs.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash("correct horse battery staple", "not-a-hash"))
}

/*
TestGenerateSecureToken verifies token length and uniqueness.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 32 bytes hex-encoded → 64 characters
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)

	// Hashing is deterministic and does not expose the token
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
	assert.NotEqual(t, first, sec.HashToken(first))
}

/*
TestUserRole_AtLeast verifies the role hierarchy ordering.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_over_moderator", sec.RoleAdmin, sec.RoleModerator, true},
		{"moderator_over_author", sec.RoleModerator, sec.RoleAuthor, true},
		{"author_over_member", sec.RoleAuthor, sec.RoleMember, true},
		{"member_not_author", sec.RoleMember, sec.RoleAuthor, false},
		{"same_role", sec.RoleAuthor, sec.RoleAuthor, true},
		{"unknown_role_below_member", sec.UserRole("ghost"), sec.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

// ownedStub satisfies sec.Owned for ownership dispatch tests.
type ownedStub struct{ userID string }

func (s ownedStub) OwnedBy() string { return s.userID }

/*
TestOwnershipDispatch verifies the capability-based authorization helpers.
*/
func TestOwnershipDispatch(t *testing.T) {
	resource := ownedStub{userID: "user-1"}

	owner := &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleMember)}
	stranger := &sec.AuthClaims{UserID: "user-2", Role: string(sec.RoleMember)}
	moderator := &sec.AuthClaims{UserID: "user-3", Role: string(sec.RoleModerator)}

	assert.True(t, sec.Owns(owner, resource))
	assert.False(t, sec.Owns(stranger, resource))
	assert.False(t, sec.Owns(nil, resource))

	assert.True(t, sec.OwnsOrModerates(owner, resource))
	assert.False(t, sec.OwnsOrModerates(stranger, resource))
	assert.True(t, sec.OwnsOrModerates(moderator, resource))
	assert.False(t, sec.OwnsOrModerates(nil, resource))
}
