// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package bookmark stores reader-saved positions inside chapters.

A bookmark pins a page within a chapter. A reader may hold several bookmarks
in the same chapter as long as the pages differ; the exact same position can
only be saved once.
*/
package bookmark

import "time"

// Bookmark is a saved reading position.
type Bookmark struct {
	ID        string `json:"id"`
	UserID    string `json:"-"`
	ChapterID string `json:"chapter_id"`

	// Page is the position within the chapter. Zero means the top.
	Page int `json:"page"`

	CreatedAt time.Time `json:"created_at"`
}

// OwnedBy implements [sec.Owned]; bookmarks are private to their creator.
func (b *Bookmark) OwnedBy() string { return b.UserID }

// Global field names for validation
const (
	FieldChapterID = "chapter_id"
	FieldPage      = "page"
)
