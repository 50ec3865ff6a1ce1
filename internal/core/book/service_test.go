// Copyright (c) 2026 Bookly. All rights reserved.

package book

import (
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
)

type fakeRepository struct {
	books   map[string]*Book
	updates []*Update
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: map[string]*Book{}}
}

func (f *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	var matched []*Book
	for _, book := range f.books {
		if filter.AuthorID != "" && book.AuthorID != filter.AuthorID {
			continue
		}
		matched = append(matched, book)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Book, error) {
	if book, ok := f.books[id]; ok {
		return book, nil
	}
	return nil, apperr.NotFound("Book")
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Book, error) {
	for _, book := range f.books {
		if book.Slug == slug {
			return book, nil
		}
	}
	return nil, apperr.NotFound("Book")
}

func (f *fakeRepository) Create(_ context.Context, book *Book) error {
	f.books[book.ID] = book
	return nil
}

func (f *fakeRepository) Update(_ context.Context, book *Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return apperr.NotFound("Book")
	}
	f.books[book.ID] = book
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.books[id]; !ok {
		return apperr.NotFound("Book")
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) ListRecentlyUpdated(_ context.Context, limit int) ([]*Update, error) {
	if limit > len(f.updates) {
		limit = len(f.updates)
	}
	return f.updates[:limit], nil
}

type fakeDirectory struct {
	profiles map[string][2]string // userID -> (authorID, name)
}

func (f *fakeDirectory) ProfileByUserID(_ context.Context, userID string) (string, string, error) {
	if profile, ok := f.profiles[userID]; ok {
		return profile[0], profile[1], nil
	}
	return "", "", apperr.NotFound("Author profile")
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleMember)}
}

func TestService_CreateBook(t *testing.T) {
	repo := newFakeRepository()
	directory := &fakeDirectory{profiles: map[string][2]string{
		"user-1": {"author-1", "Ann Author"},
	}}
	service := NewService(repo, directory, testLogger())

	t.Run("requires_author_profile", func(t *testing.T) {
		err := service.CreateBook(context.Background(), "user-without-profile", &Book{Title: "Orphan"})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("attributes_and_slugs", func(t *testing.T) {
		book := &Book{Title: "The Silent Library"}
		require.NoError(t, service.CreateBook(context.Background(), "user-1", book))

		assert.NotEmpty(t, book.ID)
		assert.Equal(t, "author-1", book.AuthorID)
		assert.Equal(t, "Ann Author", book.AuthorName)
		assert.Equal(t, "user-1", book.OwnerID)
		assert.Equal(t, "the-silent-library", book.Slug)
	})

	t.Run("rejects_empty_title", func(t *testing.T) {
		err := service.CreateBook(context.Background(), "user-1", &Book{Title: "   "})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestService_GetBook_ResolvesSlugOrID(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, &fakeDirectory{}, testLogger())

	book := &Book{
		ID:   "0191e5a0-0000-7000-8000-000000000001", // 36 chars
		Slug: "the-silent-library",
	}
	repo.books[book.ID] = book

	byID, err := service.GetBook(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, byID)

	bySlug, err := service.GetBook(context.Background(), "the-silent-library")
	require.NoError(t, err)
	assert.Equal(t, book, bySlug)
}

func TestService_UpdateBook(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, &fakeDirectory{}, testLogger())

	book := &Book{ID: "book-1", Title: "Original", OwnerID: "user-1", Slug: "original"}
	repo.books[book.ID] = book

	newTitle := "Revised"

	t.Run("owner_can_patch", func(t *testing.T) {
		updated, err := service.UpdateBook(context.Background(), memberClaims("user-1"), "book-1", UpdateInput{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "Revised", updated.Title)
		// Untouched fields survive a nil patch.
		assert.Equal(t, "original", updated.Slug)
	})

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		_, err := service.UpdateBook(context.Background(), memberClaims("user-2"), "book-1", UpdateInput{Title: &newTitle})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("anonymous_is_forbidden", func(t *testing.T) {
		_, err := service.UpdateBook(context.Background(), nil, "book-1", UpdateInput{Title: &newTitle})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("unknown_book", func(t *testing.T) {
		_, err := service.UpdateBook(context.Background(), memberClaims("user-1"), "missing", UpdateInput{})
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

func TestService_DeleteBook(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, &fakeDirectory{}, testLogger())

	seed := func() {
		repo.books["book-1"] = &Book{ID: "book-1", OwnerID: "user-1"}
	}

	t.Run("owner_deletes", func(t *testing.T) {
		seed()
		require.NoError(t, service.DeleteBook(context.Background(), memberClaims("user-1"), "book-1"))
		assert.Empty(t, repo.books)
	})

	t.Run("moderator_deletes", func(t *testing.T) {
		seed()
		moderator := &sec.AuthClaims{UserID: "mod-1", Role: string(sec.RoleModerator)}
		require.NoError(t, service.DeleteBook(context.Background(), moderator, "book-1"))
	})

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		seed()
		err := service.DeleteBook(context.Background(), memberClaims("user-2"), "book-1")
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})
}

func TestService_RecentUpdates_OrderAndDedup(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, &fakeDirectory{}, testLogger())

	now := time.Now()
	// B2's latest chapter is fresher than B1's, so B2 leads the feed; each
	// book appears exactly once no matter how many chapters it updated.
	repo.updates = []*Update{
		{Book: &Book{ID: "B2"}, LatestChapter: &ChapterRef{Number: 7, UpdatedAt: now}},
		{Book: &Book{ID: "B1"}, LatestChapter: &ChapterRef{Number: 3, UpdatedAt: now.Add(-time.Hour)}},
	}

	feed, err := service.RecentUpdates(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "B2", feed[0].Book.ID)
	assert.Equal(t, "B1", feed[1].Book.ID)

	// Oversized requests are clamped to the feed cap, never an error.
	clamped, err := service.RecentUpdates(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, clamped, 2)
}
