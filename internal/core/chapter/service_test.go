// Copyright (c) 2026 Bookly. All rights reserved.

package chapter

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/sec"
	"github.com/tidol/bookly/pkg/pointer"
)

type fakeRepository struct {
	chapters map[string]*Chapter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{chapters: map[string]*Chapter{}}
}

func (f *fakeRepository) ListByBook(_ context.Context, bookID string, _ Filter, _, _ int) ([]*Chapter, int, error) {
	var matched []*Chapter
	for _, chapter := range f.chapters {
		if chapter.BookID == bookID {
			matched = append(matched, chapter)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Chapter, error) {
	if chapter, ok := f.chapters[id]; ok {
		copied := *chapter
		return &copied, nil
	}
	return nil, apperr.NotFound("Chapter")
}

func (f *fakeRepository) Create(_ context.Context, chapter *Chapter) error {
	for _, existing := range f.chapters {
		if existing.BookID == chapter.BookID && existing.Number == chapter.Number {
			return apperr.Conflict("Resource already exists")
		}
	}
	f.chapters[chapter.ID] = chapter
	return nil
}

func (f *fakeRepository) Update(_ context.Context, chapter *Chapter) error {
	if _, ok := f.chapters[chapter.ID]; !ok {
		return apperr.NotFound("Chapter")
	}
	for _, existing := range f.chapters {
		if existing.ID != chapter.ID && existing.BookID == chapter.BookID && existing.Number == chapter.Number {
			return apperr.Conflict("Resource already exists")
		}
	}
	f.chapters[chapter.ID] = chapter
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.chapters[id]; !ok {
		return apperr.NotFound("Chapter")
	}
	delete(f.chapters, id)
	return nil
}

type fakeBookResolver struct {
	owners map[string]string // bookID -> owning userID
}

func (f *fakeBookResolver) OwnerOf(_ context.Context, bookID string) (string, error) {
	if ownerID, ok := f.owners[bookID]; ok {
		return ownerID, nil
	}
	return "", apperr.NotFound("Book")
}

type fakeViewRecorder struct {
	recorded [][2]string // (userID, chapterID)
	fail     bool
}

func (f *fakeViewRecorder) RecordView(_ context.Context, userID, chapterID string) error {
	if f.fail {
		return apperr.Internal(context.DeadlineExceeded)
	}
	f.recorded = append(f.recorded, [2]string{userID, chapterID})
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleMember)}
}

func moderatorClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleModerator)}
}

func seedChapter(repo *fakeRepository, id, bookID, ownerID string, number float64) *Chapter {
	chapter := &Chapter{
		ID:      id,
		BookID:  bookID,
		Number:  number,
		Title:   "Chapter " + id,
		Content: "Body of " + id,
		OwnerID: ownerID,
	}
	repo.chapters[id] = chapter
	return chapter
}

func TestService_CreateChapter(t *testing.T) {
	repo := newFakeRepository()
	resolver := &fakeBookResolver{owners: map[string]string{"book-1": "user-1"}}
	service := NewService(repo, resolver, &fakeViewRecorder{}, testLogger())

	t.Run("owner_publishes", func(t *testing.T) {
		chapter := &Chapter{Number: 1, Title: "The Door", Content: "It opened."}
		err := service.CreateChapter(context.Background(), memberClaims("user-1"), "book-1", chapter)
		require.NoError(t, err)
		assert.NotEmpty(t, chapter.ID)
		assert.Equal(t, "book-1", chapter.BookID)
		assert.Equal(t, "user-1", chapter.OwnerID)
	})

	t.Run("stranger_forbidden", func(t *testing.T) {
		chapter := &Chapter{Number: 2, Title: "Intrusion", Content: "No."}
		err := service.CreateChapter(context.Background(), memberClaims("user-2"), "book-1", chapter)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "FORBIDDEN", appError.Code)
	})

	t.Run("unknown_book", func(t *testing.T) {
		chapter := &Chapter{Number: 1, Title: "Lost", Content: "Where?"}
		err := service.CreateChapter(context.Background(), memberClaims("user-1"), "book-missing", chapter)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})

	t.Run("duplicate_number_conflicts", func(t *testing.T) {
		chapter := &Chapter{Number: 1, Title: "Again", Content: "Still chapter one."}
		err := service.CreateChapter(context.Background(), memberClaims("user-1"), "book-1", chapter)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
	})

	t.Run("interlude_numbers_allowed", func(t *testing.T) {
		chapter := &Chapter{Number: 1.5, Title: "Interlude", Content: "Between."}
		err := service.CreateChapter(context.Background(), memberClaims("user-1"), "book-1", chapter)
		require.NoError(t, err)
	})

	t.Run("negative_number_rejected", func(t *testing.T) {
		chapter := &Chapter{Number: -1, Title: "Prequel", Content: "Before."}
		err := service.CreateChapter(context.Background(), memberClaims("user-1"), "book-1", chapter)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})
}

func TestService_ReadChapter(t *testing.T) {
	repo := newFakeRepository()
	seedChapter(repo, "ch-1", "book-1", "user-1", 1)

	t.Run("anonymous_leaves_no_trace", func(t *testing.T) {
		recorder := &fakeViewRecorder{}
		service := NewService(repo, &fakeBookResolver{}, recorder, testLogger())

		chapter, err := service.ReadChapter(context.Background(), nil, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, "ch-1", chapter.ID)
		assert.Empty(t, recorder.recorded)
	})

	t.Run("reader_recorded", func(t *testing.T) {
		recorder := &fakeViewRecorder{}
		service := NewService(repo, &fakeBookResolver{}, recorder, testLogger())

		_, err := service.ReadChapter(context.Background(), memberClaims("user-9"), "ch-1")
		require.NoError(t, err)
		require.Len(t, recorder.recorded, 1)
		assert.Equal(t, [2]string{"user-9", "ch-1"}, recorder.recorded[0])
	})

	t.Run("history_failure_does_not_block_read", func(t *testing.T) {
		recorder := &fakeViewRecorder{fail: true}
		service := NewService(repo, &fakeBookResolver{}, recorder, testLogger())

		chapter, err := service.ReadChapter(context.Background(), memberClaims("user-9"), "ch-1")
		require.NoError(t, err)
		assert.Equal(t, "ch-1", chapter.ID)
	})
}

func TestService_UpdateChapter(t *testing.T) {
	repo := newFakeRepository()
	seedChapter(repo, "ch-1", "book-1", "user-1", 1)
	service := NewService(repo, &fakeBookResolver{}, &fakeViewRecorder{}, testLogger())

	t.Run("owner_edits", func(t *testing.T) {
		chapter, err := service.UpdateChapter(context.Background(), memberClaims("user-1"), "ch-1", UpdateInput{Title: pointer.To("Revised")})
		require.NoError(t, err)
		assert.Equal(t, "Revised", chapter.Title)
		assert.Equal(t, "Body of ch-1", chapter.Content)
	})

	t.Run("stranger_forbidden", func(t *testing.T) {
		_, err := service.UpdateChapter(context.Background(), memberClaims("user-2"), "ch-1", UpdateInput{Title: pointer.To("Vandalism")})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "FORBIDDEN", appError.Code)
	})

	t.Run("book_is_immutable", func(t *testing.T) {
		_, err := service.UpdateChapter(context.Background(), memberClaims("user-1"), "ch-1", UpdateInput{BookID: pointer.To("book-2")})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("same_book_id_tolerated", func(t *testing.T) {
		_, err := service.UpdateChapter(context.Background(), memberClaims("user-1"), "ch-1", UpdateInput{BookID: pointer.To("book-1")})
		require.NoError(t, err)
	})

	t.Run("renumber_onto_taken_slot_conflicts", func(t *testing.T) {
		seedChapter(repo, "ch-2", "book-1", "user-1", 2)
		_, err := service.UpdateChapter(context.Background(), memberClaims("user-1"), "ch-1", UpdateInput{Number: pointer.To(2.0)})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
	})
}

func TestService_DeleteChapter(t *testing.T) {
	repo := newFakeRepository()
	seedChapter(repo, "ch-1", "book-1", "user-1", 1)
	seedChapter(repo, "ch-2", "book-1", "user-1", 2)
	service := NewService(repo, &fakeBookResolver{}, &fakeViewRecorder{}, testLogger())

	t.Run("stranger_forbidden", func(t *testing.T) {
		err := service.DeleteChapter(context.Background(), memberClaims("user-2"), "ch-1")
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "FORBIDDEN", appError.Code)
	})

	t.Run("owner_deletes", func(t *testing.T) {
		err := service.DeleteChapter(context.Background(), memberClaims("user-1"), "ch-1")
		require.NoError(t, err)
		_, err = repo.FindByID(context.Background(), "ch-1")
		assert.Error(t, err)
	})

	t.Run("moderator_deletes", func(t *testing.T) {
		err := service.DeleteChapter(context.Background(), moderatorClaims("user-3"), "ch-2")
		require.NoError(t, err)
	})
}
