// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package history tracks which chapters a reader has opened.

One row exists per (user, chapter) pair; re-reading a chapter refreshes the
row's timestamp instead of inserting a duplicate. The rows double as the raw
material for view counts: a chapter's view count is the number of history
rows pointing at it.
*/
package history

import "time"

// Entry is one reading-history record, hydrated with the titles a history
// screen needs so clients avoid follow-up lookups.
type Entry struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	ChapterID     string  `json:"chapter_id"`
	ChapterNumber float64 `json:"chapter_number"`
	ChapterTitle  string  `json:"chapter_title"`

	BookID    string `json:"book_id"`
	BookTitle string `json:"book_title"`

	ViewedAt time.Time `json:"viewed_at"`
}
