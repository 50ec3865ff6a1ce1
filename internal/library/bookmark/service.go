// Copyright (c) 2026 Bookly. All rights reserved.

package bookmark

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/uuid"
)

// Service orchestrates the bookmark lifecycle.
type Service struct {
	bookmarkRepo Repository
	logger       *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(bookmarkRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

/*
CreateBookmark saves a reading position for the caller.

Description: A missing page defaults to zero (the top of the chapter). The
chapter must exist, the page must not be negative, and the exact position
may only be saved once.

Parameters:
  - context: context.Context
  - userID: string
  - bookmark: *Bookmark

Returns:
  - error: NotFound, Conflict, validation or persistence errors
*/
func (service *Service) CreateBookmark(context context.Context, userID string, bookmark *Bookmark) error {
	validator := &validate.Validator{}
	validator.Required(FieldChapterID, bookmark.ChapterID)
	validator.NonNegative(FieldPage, bookmark.Page)

	if err := validator.Err(); err != nil {
		return err
	}

	bookmark.ID = uuid.New()
	bookmark.UserID = userID

	if err := service.bookmarkRepo.Create(context, bookmark); err != nil {
		return err
	}

	service.logger.Info("bookmark_created",
		slog.String("bookmark_id", bookmark.ID),
		slog.String("chapter_id", bookmark.ChapterID),
		slog.Int("page", bookmark.Page),
	)
	return nil
}

// ListBookmarks returns the caller's saved positions, newest first.
func (service *Service) ListBookmarks(context context.Context, userID string, limit, offset int) ([]*Bookmark, int, error) {
	return service.bookmarkRepo.ListByUser(context, userID, limit, offset)
}

/*
DeleteBookmark removes one of the caller's bookmarks.

Description: Bookmarks are strictly private; not even moderators may remove
someone else's.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - id: string

Returns:
  - error: NotFound, Forbidden or deletion failures
*/
func (service *Service) DeleteBookmark(context context.Context, claims *sec.AuthClaims, id string) error {
	bookmark, err := service.bookmarkRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if !sec.Owns(claims, bookmark) {
		return apperr.Forbidden("Bookmarks may only be removed by their owner")
	}

	return service.bookmarkRepo.Delete(context, bookmark.ID)
}
