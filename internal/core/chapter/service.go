// Copyright (c) 2026 Bookly. All rights reserved.

package chapter

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/uuid"
)

// # Contracts & Types

// BookResolver answers ownership questions about books. Implemented by the
// book domain; declared here to keep the dependency one-directional.
type BookResolver interface {
	// OwnerOf returns the account owning the book's author profile.
	OwnerOf(context context.Context, bookID string) (string, error)
}

// ViewRecorder receives read events for authenticated readers. Implemented
// by the history domain.
type ViewRecorder interface {
	// RecordView upserts the (user, chapter) history row.
	RecordView(context context.Context, userID, chapterID string) error
}

// Service orchestrates the chapter lifecycle and the read side-effect.
type Service struct {
	chapterRepo Repository
	books       BookResolver
	views       ViewRecorder
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(chapterRepo Repository, books BookResolver, views ViewRecorder, logger *slog.Logger) *Service {
	return &Service{
		chapterRepo: chapterRepo,
		books:       books,
		views:       views,
		logger:      logger,
	}
}

// # Reading

// ListChapters returns a book's chapter index without content bodies.
func (service *Service) ListChapters(context context.Context, bookID string, filter Filter, limit, offset int) ([]*Chapter, int, error) {
	return service.chapterRepo.ListByBook(context, bookID, filter, limit, offset)
}

/*
ReadChapter fetches a full chapter and, for authenticated readers, records
the visit in their reading history.

Description: The history write is a best-effort side effect; a failing
history store never blocks the read itself.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (nil for anonymous readers)
  - id: string

Returns:
  - *Chapter: Hydrated entity with content and view count
  - error: NotFound or retrieval failures
*/
func (service *Service) ReadChapter(context context.Context, claims *sec.AuthClaims, id string) (*Chapter, error) {
	chapter, err := service.chapterRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if claims != nil {
		if err := service.views.RecordView(context, claims.UserID, chapter.ID); err != nil {
			service.logger.Error("chapter_view_record_failed",
				slog.String("chapter_id", chapter.ID),
				slog.String("user_id", claims.UserID),
				slog.Any("error", err),
			)
		}
	}

	return chapter, nil
}

// # Authoring

/*
CreateChapter appends a new chapter to a book.

Description: Only the book's owning author may publish chapters. The chapter
number must be unique within the book; a duplicate surfaces as Conflict.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - bookID: string
  - chapter: *Chapter

Returns:
  - error: NotFound, Forbidden, Conflict, validation or persistence errors
*/
func (service *Service) CreateChapter(context context.Context, claims *sec.AuthClaims, bookID string, chapter *Chapter) error {
	ownerID, err := service.books.OwnerOf(context, bookID)
	if err != nil {
		return err
	}
	if claims == nil || claims.UserID != ownerID {
		return apperr.Forbidden("Only the author may publish chapters")
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, chapter.Title).MaxLen(FieldTitle, chapter.Title, 500)
	validator.Required(FieldContent, chapter.Content)
	validator.Custom(FieldNumber, chapter.Number < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return err
	}

	chapter.ID = uuid.New()
	chapter.BookID = bookID
	chapter.OwnerID = ownerID

	if err := service.chapterRepo.Create(context, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_created",
		slog.String("chapter_id", chapter.ID),
		slog.String("book_id", bookID),
		slog.Float64("number", chapter.Number),
	)
	return nil
}

/*
UpdateChapter applies a partial modification to a chapter.

Description: Only the owning author may modify. The parent book is
immutable: any attempt to change it is rejected outright.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - id: string
  - input: UpdateInput

Returns:
  - *Chapter: The updated entity
  - error: NotFound, Forbidden, Conflict, validation or persistence errors
*/
func (service *Service) UpdateChapter(context context.Context, claims *sec.AuthClaims, id string, input UpdateInput) (*Chapter, error) {
	chapter, err := service.chapterRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if !sec.Owns(claims, chapter) {
		return nil, apperr.Forbidden("Only the author may modify this chapter")
	}

	// A chapter is born into its book and stays there.
	if input.BookID != nil && *input.BookID != chapter.BookID {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldBookID,
			Message: "A chapter cannot be moved to another book",
		})
	}

	if input.Number != nil {
		chapter.Number = *input.Number
	}
	if input.Title != nil {
		chapter.Title = *input.Title
	}
	if input.Content != nil {
		chapter.Content = *input.Content
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, chapter.Title).MaxLen(FieldTitle, chapter.Title, 500)
	validator.Required(FieldContent, chapter.Content)
	validator.Custom(FieldNumber, chapter.Number < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.chapterRepo.Update(context, chapter); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_updated", slog.String("chapter_id", chapter.ID))
	return chapter, nil
}

/*
DeleteChapter permanently removes a chapter.

Description: The owning author or a moderator may delete. History rows,
bookmarks and comments beneath the chapter cascade.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - id: string

Returns:
  - error: NotFound, Forbidden or deletion failures
*/
func (service *Service) DeleteChapter(context context.Context, claims *sec.AuthClaims, id string) error {
	chapter, err := service.chapterRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if !sec.OwnsOrModerates(claims, chapter) {
		return apperr.Forbidden("Only the author or a moderator may delete this chapter")
	}

	if err := service.chapterRepo.Delete(context, chapter.ID); err != nil {
		return err
	}

	service.logger.Warn("chapter_deleted", slog.String("chapter_id", chapter.ID))
	return nil
}
