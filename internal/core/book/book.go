// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package book defines the central catalogue aggregate of the Bookly domain.

It manages the lifecycle of serialised web novels: metadata, genre
associations, attribution to author profiles, and the recent-updates feed
that drives the platform's front page.

Core Responsibility:

  - Catalogue: Title, slug, description and cover metadata.
  - Attribution: Every book belongs to exactly one author profile.
  - Discovery: Substring search, genre filtering, and the recent-updates feed.
  - Analytics: View counts derived from reading history, never denormalized.

This package acts as the source of truth for all book-related data models.
*/
package book

import "time"

// # Core Entities

// Book represents a single serialised publication in the catalogue.
type Book struct {
	ID          string `json:"id"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name,omitempty"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`

	// ViewCount is the sum of distinct (user, chapter) history rows across
	// the book's chapters. Computed at read time.
	ViewCount int64 `json:"view_count"`

	Genres   []GenreRef `json:"genres"`
	GenreIDs []string   `json:"genre_ids,omitempty"` // write-side association payload

	// OwnerID is the account that owns the attributed author profile.
	// Never serialized; used for authorization only.
	OwnerID string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy implements [sec.Owned] through the attributed author's account.
func (b *Book) OwnedBy() string { return b.OwnerID }

// GenreRef is the read-side projection of an associated genre.
type GenreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ChapterRef is the latest-chapter projection used by the recent-updates feed.
type ChapterRef struct {
	ID        string    `json:"id"`
	Number    float64   `json:"number"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update pairs a book with its most recently updated chapter.
type Update struct {
	Book          *Book       `json:"book"`
	LatestChapter *ChapterRef `json:"latest_chapter"`
}

// Filter holds the parameters for a paginated catalogue query.
type Filter struct {
	Query     string // Substring search against title
	GenreSlug string // Restrict to a single genre
	AuthorID  string // Restrict to one author profile
}

// UpdateInput carries a partial modification. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CoverURL    *string  `json:"cover_url"`
	GenreIDs    []string `json:"genre_ids"`
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCoverURL    = "cover_url"
	FieldGenreIDs    = "genre_ids"
)
