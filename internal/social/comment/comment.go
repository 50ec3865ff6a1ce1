// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package comment implements chapter discussion threads.

Threads are one level deep: a comment either sits at the top of a chapter's
discussion or replies to a top-level comment. Replies to replies are
rejected, which keeps rendering and pagination flat.
*/
package comment

import "time"

// Comment is a single discussion entry under a chapter.
type Comment struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	ChapterID string `json:"chapter_id"`

	// ParentID points at the top-level comment this replies to, nil for
	// top-level comments themselves.
	ParentID *string `json:"parent_id,omitempty"`

	Body string `json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy implements [sec.Owned]; the commenter controls the comment.
func (c *Comment) OwnedBy() string { return c.UserID }

// Global field names for validation
const (
	FieldBody     = "body"
	FieldParentID = "parent_id"
)
