// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package follow maintains reader subscriptions to books.

A follow ties one reader to one book at most once. Listings are hydrated
with the book's latest chapter so a subscription screen can show what is
new without further round-trips.
*/
package follow

import "time"

// Follow is one reader subscription to a book.
type Follow struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	BookID    string `json:"book_id"`
	BookTitle string `json:"book_title"`
	BookSlug  string `json:"book_slug"`

	// LatestChapter is the book's most recently updated chapter, nil when
	// the book has no chapters yet.
	LatestChapter *ChapterRef `json:"latest_chapter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ChapterRef is the shallow chapter projection shown in follow listings.
type ChapterRef struct {
	ID        string    `json:"id"`
	Number    float64   `json:"number"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldBookID = "book_id"
)
