// Copyright (c) 2026 Bookly. All rights reserved.

package follow

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidol/bookly/internal/platform/apperr"
)

type fakeRepository struct {
	follows map[[2]string]*Follow // (userID, bookID) -> row
	books   map[string]string     // bookID -> title
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		follows: map[[2]string]*Follow{},
		books:   map[string]string{},
	}
}

func (f *fakeRepository) Create(_ context.Context, id, userID, bookID string) error {
	title, ok := f.books[bookID]
	if !ok {
		return apperr.NotFound("Book")
	}
	key := [2]string{userID, bookID}
	if _, exists := f.follows[key]; exists {
		return apperr.Conflict("Resource already exists")
	}
	f.follows[key] = &Follow{ID: id, UserID: userID, BookID: bookID, BookTitle: title}
	return nil
}

func (f *fakeRepository) FindByUserAndBook(_ context.Context, userID, bookID string) (*Follow, error) {
	if follow, ok := f.follows[[2]string{userID, bookID}]; ok {
		return follow, nil
	}
	return nil, apperr.NotFound("Follow")
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string, _, _ int) ([]*Follow, int, error) {
	var matched []*Follow
	for _, follow := range f.follows {
		if follow.UserID == userID {
			matched = append(matched, follow)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) Delete(_ context.Context, userID, bookID string) error {
	key := [2]string{userID, bookID}
	if _, ok := f.follows[key]; !ok {
		return apperr.NotFound("Follow")
	}
	delete(f.follows, key)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestService_FollowBook(t *testing.T) {
	repo := newFakeRepository()
	repo.books["book-1"] = "The Silent Library"
	service := NewService(repo, testLogger())

	t.Run("subscribes_and_hydrates", func(t *testing.T) {
		follow, err := service.FollowBook(context.Background(), "user-1", "book-1")
		require.NoError(t, err)
		assert.Equal(t, "book-1", follow.BookID)
		assert.Equal(t, "The Silent Library", follow.BookTitle)
	})

	t.Run("repeat_follow_conflicts", func(t *testing.T) {
		_, err := service.FollowBook(context.Background(), "user-1", "book-1")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
	})

	t.Run("unknown_book", func(t *testing.T) {
		_, err := service.FollowBook(context.Background(), "user-1", "book-missing")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})

	t.Run("empty_book_id_rejected", func(t *testing.T) {
		_, err := service.FollowBook(context.Background(), "user-1", "")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})
}

func TestService_UnfollowBook(t *testing.T) {
	repo := newFakeRepository()
	repo.books["book-1"] = "The Silent Library"
	service := NewService(repo, testLogger())

	_, err := service.FollowBook(context.Background(), "user-1", "book-1")
	require.NoError(t, err)

	t.Run("removes_subscription", func(t *testing.T) {
		require.NoError(t, service.UnfollowBook(context.Background(), "user-1", "book-1"))

		_, total, err := service.ListFollows(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("not_following_is_not_found", func(t *testing.T) {
		err := service.UnfollowBook(context.Background(), "user-1", "book-1")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})
}
