// Copyright (c) 2026 Bookly. All rights reserved.

package book

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/constants"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/slug"
	"github.com/tidol/bookly/pkg/uuid"
)

// # Contracts & Types

// AuthorDirectory resolves the author profile of an account. Implemented by
// the author domain; declared here to keep the dependency one-directional.
type AuthorDirectory interface {
	// ProfileByUserID returns the profile ID and display name owned by the
	// given account, or an error when the account has no profile.
	ProfileByUserID(context context.Context, userID string) (string, string, error)
}

// Service orchestrates the business logic for the book catalogue.
type Service struct {
	bookRepo Repository
	authors  AuthorDirectory
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(bookRepo Repository, authors AuthorDirectory, logger *slog.Logger) *Service {
	return &Service{
		bookRepo: bookRepo,
		authors:  authors,
		logger:   logger,
	}
}

// # Catalogue Lookups

/*
ListBooks retrieves a paginated and filtered collection of books.

Parameters:
  - context: context.Context
  - filter: Filter (Criteria for search, genre, author)
  - limit: int
  - offset: int

Returns:
  - []*Book: Matching catalogue records
  - int: Total count for pagination metadata
  - error: Repository errors
*/
func (service *Service) ListBooks(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	return service.bookRepo.List(context, filter, limit, offset)
}

/*
GetBook fetches a single book by UUID or SEO slug.

Description: If the identifier matches the UUID format it performs a primary
key lookup; otherwise it resolves via the unique URL slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Book: The hydrated domain entity
  - error: NotFound if no match exists
*/
func (service *Service) GetBook(context context.Context, identifier string) (*Book, error) {
	if isUUID(identifier) {
		return service.bookRepo.FindByID(context, identifier)
	}
	return service.bookRepo.FindBySlug(context, identifier)
}

/*
RecentUpdates returns the front-page feed: books ordered by their most
recently updated chapter, each paired with that chapter.

Description: The feed deduplicates books; a book with five fresh chapters
still occupies a single slot. The requested size is clamped to the feed cap.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []*Update: Feed entries, newest first
  - error: Repository errors
*/
func (service *Service) RecentUpdates(context context.Context, limit int) ([]*Update, error) {
	if limit <= 0 || limit > constants.RecentUpdatesCap {
		limit = constants.RecentUpdatesCap
	}
	return service.bookRepo.ListRecentlyUpdated(context, limit)
}

// # Catalogue Management

/*
CreateBook initialises a new publication attributed to the caller's author profile.

Description: Requires the calling account to hold an author profile. Performs
deep validation, generates a UUIDv7 identity and an SEO slug, and persists
the book together with its genre associations.

Parameters:
  - context: context.Context
  - userID: string (Calling account)
  - book: *Book (The entity to be persisted)

Returns:
  - error: Forbidden (no author profile), validation or persistence errors
*/
func (service *Service) CreateBook(context context.Context, userID string, book *Book) error {

	// Attribution: only accounts with an author profile may publish.
	authorID, authorName, err := service.authors.ProfileByUserID(context, userID)
	if err != nil {
		return apperr.Forbidden("An author profile is required to publish books")
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 500)
	validator.MaxLen(FieldDescription, book.Description, 5000)
	if book.CoverURL != "" {
		validator.URL(FieldCoverURL, book.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	book.ID = uuid.New()
	book.AuthorID = authorID
	book.AuthorName = authorName
	book.OwnerID = userID

	if book.Slug == "" {
		book.Slug = slug.From(book.Title)
	}

	if err := service.bookRepo.Create(context, book); err != nil {
		return err
	}

	service.logger.Info("book_created",
		slog.String("book_id", book.ID),
		slog.String("author_id", authorID),
		slog.String("title", book.Title),
	)

	return nil
}

/*
UpdateBook applies a partial modification to an existing book.

Description: Only the owning author may modify a book. Nil fields in the
input are left untouched; a non-nil GenreIDs slice fully replaces the genre
associations. The attributed author can never be changed.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Caller identity)
  - id: string
  - input: UpdateInput

Returns:
  - *Book: The updated entity
  - error: NotFound, Forbidden, validation or persistence errors
*/
func (service *Service) UpdateBook(context context.Context, claims *sec.AuthClaims, id string, input UpdateInput) (*Book, error) {
	book, err := service.bookRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if !sec.Owns(claims, book) {
		return nil, apperr.Forbidden("Only the author may modify this book")
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.CoverURL != nil {
		book.CoverURL = *input.CoverURL
	}
	book.GenreIDs = input.GenreIDs

	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 500)
	validator.MaxLen(FieldDescription, book.Description, 5000)
	if book.CoverURL != "" {
		validator.URL(FieldCoverURL, book.CoverURL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.bookRepo.Update(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.String("book_id", book.ID))
	return book, nil
}

/*
DeleteBook permanently removes a book and all dependent data.

Description: The owning author or a moderator may delete. Chapters, history
rows, bookmarks, follows, reviews and comments disappear with the book via
the storage cascade.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Caller identity)
  - id: string

Returns:
  - error: NotFound, Forbidden or deletion failures
*/
func (service *Service) DeleteBook(context context.Context, claims *sec.AuthClaims, id string) error {
	book, err := service.bookRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if !sec.OwnsOrModerates(claims, book) {
		return apperr.Forbidden("Only the author or a moderator may delete this book")
	}

	if err := service.bookRepo.Delete(context, book.ID); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", book.ID))
	return nil
}

// OwnerOf resolves the owning account of a book. Used by the chapter domain
// for authorization without importing this package's entities.
func (service *Service) OwnerOf(context context.Context, bookID string) (string, error) {
	book, err := service.bookRepo.FindByID(context, bookID)
	if err != nil {
		return "", err
	}
	return book.OwnerID, nil
}

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}
