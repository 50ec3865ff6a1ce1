// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package chapter manages the reading units of the Bookly catalogue.

A chapter belongs to exactly one book for its whole life; its position is a
decimal number unique within that book (interludes like 4.5 are first-class).
Reading a chapter feeds the history tracker, which in turn powers view counts
and the recent-updates feed.
*/
package chapter

import "time"

// Chapter represents a single reading unit of a book.
type Chapter struct {
	ID     string  `json:"id"`
	BookID string  `json:"book_id"`
	Number float64 `json:"number"`
	Title  string  `json:"title"`

	// Content is the chapter body. Omitted from list projections.
	Content string `json:"content,omitempty"`

	// ViewCount is the number of distinct readers, computed at read time.
	ViewCount int64 `json:"view_count"`

	// OwnerID is the account owning the parent book's author profile.
	// Never serialized; used for authorization only.
	OwnerID string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy implements [sec.Owned] through the parent book's author.
func (c *Chapter) OwnedBy() string { return c.OwnerID }

// Filter holds listing options for a book's chapter index.
type Filter struct {
	SortDir string // "asc" (default) or "desc" by chapter number
}

// UpdateInput carries a partial modification. Nil fields are left untouched.
type UpdateInput struct {
	Number  *float64 `json:"number"`
	Title   *string  `json:"title"`
	Content *string  `json:"content"`

	// BookID is accepted in the payload only to be rejected: a chapter can
	// never move between books.
	BookID *string `json:"book_id"`
}

// Global field names for validation
const (
	FieldNumber  = "number"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldBookID  = "book_id"
)
