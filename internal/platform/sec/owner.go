// Copyright (c) 2026 Bookly. All rights reserved.

package sec

// # Ownership Capability

// Owned is satisfied by any entity that can name its owning user.
//
// Authorization checks dispatch through this interface instead of
// type-switching on concrete entities: a bookmark, a follow, a review, or a
// book (via its author's user) all answer the same question uniformly.
type Owned interface {
	// OwnedBy returns the user ID that owns the entity.
	OwnedBy() string
}

// Owns reports whether the authenticated claims belong to the entity's owner.
//
// Anonymous callers own nothing.
func Owns(claims *AuthClaims, resource Owned) bool {
	if claims == nil || resource == nil {
		return false
	}
	return resource.OwnedBy() == claims.UserID
}

// OwnsOrModerates reports whether the caller owns the entity or holds at
// least the moderator role. Used for community content (comments, reviews).
func OwnsOrModerates(claims *AuthClaims, resource Owned) bool {
	if claims == nil {
		return false
	}
	if UserRole(claims.Role).AtLeast(RoleModerator) {
		return true
	}
	return Owns(claims, resource)
}
