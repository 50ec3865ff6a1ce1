// Copyright (c) 2026 Bookly. All rights reserved.

package review

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/uuid"
)

// Service orchestrates book reviews.
type Service struct {
	reviewRepo Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(reviewRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// ListReviews returns a book's reviews, newest first.
func (service *Service) ListReviews(context context.Context, bookID string, limit, offset int) ([]*Review, int, error) {
	return service.reviewRepo.ListByBook(context, bookID, limit, offset)
}

/*
CreateReview posts the caller's verdict on a book.

Description: The score must fall in 1..5 and a reader may review a book
only once; a second attempt surfaces as Conflict.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - review: *Review

Returns:
  - error: NotFound, Conflict, validation or persistence errors
*/
func (service *Service) CreateReview(context context.Context, userID, bookID string, review *Review) error {
	validator := &validate.Validator{}
	validator.Range(FieldScore, review.Score, 1, 5)
	validator.MaxLen(FieldBody, review.Body, 10000)

	if err := validator.Err(); err != nil {
		return err
	}

	review.ID = uuid.New()
	review.UserID = userID
	review.BookID = bookID

	if err := service.reviewRepo.Create(context, review); err != nil {
		return err
	}

	service.logger.Info("review_created",
		slog.String("review_id", review.ID),
		slog.String("book_id", bookID),
		slog.Int("score", review.Score),
	)
	return nil
}

/*
DeleteReview removes one of the caller's reviews.

Description: Only the reviewer may withdraw a review.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims
  - id: string

Returns:
  - error: NotFound, Forbidden or deletion failures
*/
func (service *Service) DeleteReview(context context.Context, claims *sec.AuthClaims, id string) error {
	review, err := service.reviewRepo.FindByID(context, id)
	if err != nil {
		return err
	}

	if !sec.Owns(claims, review) {
		return apperr.Forbidden("Only the reviewer may delete this review")
	}

	if err := service.reviewRepo.Delete(context, review.ID); err != nil {
		return err
	}

	service.logger.Warn("review_deleted", slog.String("review_id", review.ID))
	return nil
}
