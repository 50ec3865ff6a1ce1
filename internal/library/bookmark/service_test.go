// Copyright (c) 2026 Bookly. All rights reserved.

package bookmark

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
	bookmarks map[string]*Bookmark
	chapters  map[string]bool
}

func newFakeRepository(chapterIDs ...string) *fakeRepository {
	chapters := map[string]bool{}
	for _, id := range chapterIDs {
		chapters[id] = true
	}
	return &fakeRepository{bookmarks: map[string]*Bookmark{}, chapters: chapters}
}

func (f *fakeRepository) Create(_ context.Context, bookmark *Bookmark) error {
	if !f.chapters[bookmark.ChapterID] {
		return apperr.NotFound("Chapter")
	}
	for _, existing := range f.bookmarks {
		if existing.UserID == bookmark.UserID &&
			existing.ChapterID == bookmark.ChapterID &&
			existing.Page == bookmark.Page {
			return apperr.Conflict("Resource already exists")
		}
	}
	f.bookmarks[bookmark.ID] = bookmark
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Bookmark, error) {
	if bookmark, ok := f.bookmarks[id]; ok {
		return bookmark, nil
	}
	return nil, apperr.NotFound("Bookmark")
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string, _, _ int) ([]*Bookmark, int, error) {
	var matched []*Bookmark
	for _, bookmark := range f.bookmarks {
		if bookmark.UserID == userID {
			matched = append(matched, bookmark)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.bookmarks[id]; !ok {
		return apperr.NotFound("Bookmark")
	}
	delete(f.bookmarks, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleMember)}
}

func TestService_CreateBookmark(t *testing.T) {
	repo := newFakeRepository("ch-1")
	service := NewService(repo, testLogger())

	t.Run("page_defaults_to_top", func(t *testing.T) {
		bookmark := &Bookmark{ChapterID: "ch-1"}
		require.NoError(t, service.CreateBookmark(context.Background(), "user-1", bookmark))
		assert.Equal(t, "user-1", bookmark.UserID)
		assert.Zero(t, bookmark.Page)
	})

	t.Run("negative_page_rejected", func(t *testing.T) {
		bookmark := &Bookmark{ChapterID: "ch-1", Page: -3}
		err := service.CreateBookmark(context.Background(), "user-1", bookmark)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("unknown_chapter", func(t *testing.T) {
		bookmark := &Bookmark{ChapterID: "ch-missing", Page: 1}
		err := service.CreateBookmark(context.Background(), "user-1", bookmark)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})

	t.Run("same_position_twice_conflicts", func(t *testing.T) {
		bookmark := &Bookmark{ChapterID: "ch-1", Page: 0}
		err := service.CreateBookmark(context.Background(), "user-1", bookmark)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
	})

	t.Run("different_page_same_chapter_allowed", func(t *testing.T) {
		bookmark := &Bookmark{ChapterID: "ch-1", Page: 7}
		require.NoError(t, service.CreateBookmark(context.Background(), "user-1", bookmark))
	})
}

func TestService_DeleteBookmark(t *testing.T) {
	repo := newFakeRepository("ch-1")
	service := NewService(repo, testLogger())

	owned := &Bookmark{ChapterID: "ch-1", Page: 2}
	require.NoError(t, service.CreateBookmark(context.Background(), "user-1", owned))

	t.Run("stranger_forbidden", func(t *testing.T) {
		err := service.DeleteBookmark(context.Background(), memberClaims("user-2"), owned.ID)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "FORBIDDEN", appError.Code)
	})

	t.Run("owner_deletes", func(t *testing.T) {
		require.NoError(t, service.DeleteBookmark(context.Background(), memberClaims("user-1"), owned.ID))

		_, total, err := service.ListBookmarks(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("missing_bookmark", func(t *testing.T) {
		err := service.DeleteBookmark(context.Background(), memberClaims("user-1"), "bm-missing")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})
}
