// Copyright (c) 2026 Bookly. All rights reserved.

package comment

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/uuid"
)

// Service orchestrates chapter discussions.
type Service struct {
	commentRepo Repository
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(commentRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// ListComments returns a chapter's discussion, oldest first.
func (service *Service) ListComments(context context.Context, chapterID string, limit, offset int) ([]*Comment, int, error) {
	return service.commentRepo.ListByChapter(context, chapterID, limit, offset)
}

/*
CreateComment posts a comment under a chapter, optionally replying to a
top-level comment.

Description: Threads stay one level deep. A reply must name a parent in the
same chapter, and that parent must itself be top-level.

Parameters:
  - context: context.Context
  - userID: string
  - chapterID: string
  - comment: *Comment

Returns:
  - error: NotFound, validation or persistence errors
*/
func (service *Service) CreateComment(context context.Context, userID, chapterID string, comment *Comment) error {
	validator := &validate.Validator{}
	validator.Required(FieldBody, comment.Body).MaxLen(FieldBody, comment.Body, 5000)

	if err := validator.Err(); err != nil {
		return err
	}

	if comment.ParentID != nil {
		parent, err := service.commentRepo.FindByID(context, *comment.ParentID)
		if err != nil {
			return err
		}
		if parent.ChapterID != chapterID {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldParentID,
				Message: "Parent comment belongs to a different chapter",
			})
		}
		if parent.ParentID != nil {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldParentID,
				Message: "Replies cannot be nested further",
			})
		}
	}

	comment.ID = uuid.New()
	comment.UserID = userID
	comment.ChapterID = chapterID

	if err := service.commentRepo.Create(context, comment); err != nil {
		return err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", comment.ID),
		slog.String("chapter_id", chapterID),
	)
	return nil
}

/*
DeleteComment removes a comment and its replies.

Description: The commenter or a moderator may delete.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - id: string

Returns:
  - error: NotFound, Forbidden or deletion failures
*/
func (service *Service) DeleteComment(context context.Context, claims *sec.AuthClaims, id string) error {
	comment, err := service.commentRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if !sec.OwnsOrModerates(claims, comment) {
		return apperr.Forbidden("Only the commenter or a moderator may delete this comment")
	}

	if err := service.commentRepo.Delete(context, comment.ID); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted", slog.String("comment_id", comment.ID))
	return nil
}
