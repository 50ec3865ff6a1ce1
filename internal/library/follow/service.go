// Copyright (c) 2026 Bookly. All rights reserved.

package follow

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/uuid"
)

// Service orchestrates reader subscriptions.
type Service struct {
	followRepo Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(followRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		followRepo: followRepo,
		logger:     logger,
	}
}

/*
FollowBook subscribes the caller to a book.

Description: The book must exist and the caller must not already follow it.
The returned subscription carries the book's latest chapter.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - *Follow: The hydrated subscription
  - error: NotFound, Conflict, validation or persistence errors
*/
func (service *Service) FollowBook(context context.Context, userID, bookID string) (*Follow, error) {
	validator := &validate.Validator{}
	validator.Required(FieldBookID, bookID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.followRepo.Create(context, uuid.New(), userID, bookID); err != nil {
		return nil, err
	}

	service.logger.Info("book_followed",
		slog.String("book_id", bookID),
		slog.String("user_id", userID),
	)

	return service.followRepo.FindByUserAndBook(context, userID, bookID)
}

// ListFollows returns the caller's subscriptions, newest first.
func (service *Service) ListFollows(context context.Context, userID string, limit, offset int) ([]*Follow, int, error) {
	return service.followRepo.ListByUser(context, userID, limit, offset)
}

// UnfollowBook removes the caller's subscription to a book. NotFound when
// the caller was not following it.
func (service *Service) UnfollowBook(context context.Context, userID, bookID string) error {
	if err := service.followRepo.Delete(context, userID, bookID); err != nil {
		return err
	}

	service.logger.Info("book_unfollowed",
		slog.String("book_id", bookID),
		slog.String("user_id", userID),
	)
	return nil
}
