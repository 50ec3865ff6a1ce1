// Copyright (c) 2026 Bookly. All rights reserved.

package review

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
)

type fakeRepository struct {
	reviews map[string]*Review
	books   map[string]bool
}

func newFakeRepository(bookIDs ...string) *fakeRepository {
	books := map[string]bool{}
	for _, id := range bookIDs {
		books[id] = true
	}
	return &fakeRepository{reviews: map[string]*Review{}, books: books}
}

func (f *fakeRepository) ListByBook(_ context.Context, bookID string, _, _ int) ([]*Review, int, error) {
	var matched []*Review
	for _, review := range f.reviews {
		if review.BookID == bookID {
			matched = append(matched, review)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Review, error) {
	if review, ok := f.reviews[id]; ok {
		return review, nil
	}
	return nil, apperr.NotFound("Review")
}

func (f *fakeRepository) Create(_ context.Context, review *Review) error {
	if !f.books[review.BookID] {
		return apperr.NotFound("Book")
	}
	for _, existing := range f.reviews {
		if existing.UserID == review.UserID && existing.BookID == review.BookID {
			return apperr.Conflict("Resource already exists")
		}
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return apperr.NotFound("Review")
	}
	delete(f.reviews, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleMember)}
}

func TestService_CreateReview(t *testing.T) {
	repo := newFakeRepository("book-1")
	service := NewService(repo, testLogger())

	t.Run("score_bounds", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			err := service.CreateReview(context.Background(), "user-1", "book-1", &Review{Score: score})
			appError := apperr.As(err)
			require.NotNil(t, appError, "score %d", score)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		}
	})

	t.Run("posts_verdict", func(t *testing.T) {
		review := &Review{Score: 4, Body: "Slow start, strong finish."}
		require.NoError(t, service.CreateReview(context.Background(), "user-1", "book-1", review))
		assert.Equal(t, "user-1", review.UserID)
		assert.Equal(t, "book-1", review.BookID)
	})

	t.Run("second_review_conflicts", func(t *testing.T) {
		err := service.CreateReview(context.Background(), "user-1", "book-1", &Review{Score: 5})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
	})

	t.Run("unknown_book", func(t *testing.T) {
		err := service.CreateReview(context.Background(), "user-1", "book-missing", &Review{Score: 3})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})
}

func TestService_DeleteReview(t *testing.T) {
	repo := newFakeRepository("book-1")
	service := NewService(repo, testLogger())

	review := &Review{Score: 2, Body: "Not for me."}
	require.NoError(t, service.CreateReview(context.Background(), "user-1", "book-1", review))

	t.Run("stranger_forbidden", func(t *testing.T) {
		err := service.DeleteReview(context.Background(), memberClaims("user-2"), review.ID)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "FORBIDDEN", appError.Code)
	})

	t.Run("reviewer_withdraws", func(t *testing.T) {
		require.NoError(t, service.DeleteReview(context.Background(), memberClaims("user-1"), review.ID))

		_, total, err := service.ListReviews(context.Background(), "book-1", 20, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
