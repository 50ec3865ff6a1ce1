// Copyright (c) 2026 Bookly. All rights reserved.

package comment

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
	comments map[string]*Comment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{comments: map[string]*Comment{}}
}

func (f *fakeRepository) ListByChapter(_ context.Context, chapterID string, _, _ int) ([]*Comment, int, error) {
	var matched []*Comment
	for _, comment := range f.comments {
		if comment.ChapterID == chapterID {
			matched = append(matched, comment)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Comment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (f *fakeRepository) Create(_ context.Context, comment *Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return apperr.NotFound("Comment")
	}
	delete(f.comments, id)
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

func TestService_CreateComment(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, testLogger())

	topLevel := &Comment{Body: "Great chapter."}
	require.NoError(t, service.CreateComment(context.Background(), "user-1", "ch-1", topLevel))

	t.Run("reply_to_top_level", func(t *testing.T) {
		reply := &Comment{Body: "Agreed.", ParentID: &topLevel.ID}
		require.NoError(t, service.CreateComment(context.Background(), "user-2", "ch-1", reply))
		assert.Equal(t, "ch-1", reply.ChapterID)

		t.Run("reply_to_reply_rejected", func(t *testing.T) {
			nested := &Comment{Body: "Also agreed.", ParentID: &reply.ID}
			err := service.CreateComment(context.Background(), "user-3", "ch-1", nested)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	})

	t.Run("parent_in_other_chapter_rejected", func(t *testing.T) {
		stray := &Comment{Body: "Wrong thread.", ParentID: &topLevel.ID}
		err := service.CreateComment(context.Background(), "user-2", "ch-2", stray)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("unknown_parent", func(t *testing.T) {
		missing := "cm-missing"
		orphan := &Comment{Body: "Hello?", ParentID: &missing}
		err := service.CreateComment(context.Background(), "user-2", "ch-1", orphan)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})

	t.Run("empty_body_rejected", func(t *testing.T) {
		blank := &Comment{}
		err := service.CreateComment(context.Background(), "user-1", "ch-1", blank)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})
}

func TestService_DeleteComment(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, testLogger())

	mine := &Comment{Body: "Mine."}
	require.NoError(t, service.CreateComment(context.Background(), "user-1", "ch-1", mine))
	other := &Comment{Body: "Theirs."}
	require.NoError(t, service.CreateComment(context.Background(), "user-2", "ch-1", other))

	t.Run("stranger_forbidden", func(t *testing.T) {
		err := service.DeleteComment(context.Background(), memberClaims("user-3"), mine.ID)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "FORBIDDEN", appError.Code)
	})

	t.Run("commenter_deletes", func(t *testing.T) {
		require.NoError(t, service.DeleteComment(context.Background(), memberClaims("user-1"), mine.ID))
	})

	t.Run("moderator_deletes", func(t *testing.T) {
		require.NoError(t, service.DeleteComment(context.Background(), moderatorClaims("user-9"), other.ID))
	})
}
