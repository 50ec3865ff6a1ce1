// Copyright (c) 2026 Bookly. All rights reserved.

package history

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository mimics the store's upsert semantics: one row per
// (user, chapter) pair, repeat views only advance the timestamp.
type fakeRepository struct {
	entries map[[2]string]*Entry // (userID, chapterID) -> row
	clock   time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		entries: map[[2]string]*Entry{},
		clock:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepository) Upsert(_ context.Context, id, userID, chapterID string) error {
	f.clock = f.clock.Add(time.Minute)
	key := [2]string{userID, chapterID}
	if existing, ok := f.entries[key]; ok {
		existing.ViewedAt = f.clock
		return nil
	}
	f.entries[key] = &Entry{ID: id, UserID: userID, ChapterID: chapterID, ViewedAt: f.clock}
	return nil
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string, _, _ int) ([]*Entry, int, error) {
	var matched []*Entry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) ClearByUser(_ context.Context, userID string) error {
	for key, entry := range f.entries {
		if entry.UserID == userID {
			delete(f.entries, key)
		}
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestService_RecordView(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, testLogger())

	t.Run("first_view_creates_row", func(t *testing.T) {
		require.NoError(t, service.RecordView(context.Background(), "user-1", "ch-1"))

		entries, total, err := service.ListHistory(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "ch-1", entries[0].ChapterID)
	})

	t.Run("repeat_view_advances_timestamp_only", func(t *testing.T) {
		before, _, err := service.ListHistory(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		firstSeen := before[0].ViewedAt

		require.NoError(t, service.RecordView(context.Background(), "user-1", "ch-1"))

		after, total, err := service.ListHistory(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.True(t, after[0].ViewedAt.After(firstSeen))
	})

	t.Run("histories_are_per_user", func(t *testing.T) {
		require.NoError(t, service.RecordView(context.Background(), "user-2", "ch-1"))

		_, totalOne, err := service.ListHistory(context.Background(), "user-1", 20, 0)
		require.NoError(t, err)
		_, totalTwo, err := service.ListHistory(context.Background(), "user-2", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, totalOne)
		assert.Equal(t, 1, totalTwo)
	})
}

func TestService_ClearHistory(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, testLogger())

	require.NoError(t, service.RecordView(context.Background(), "user-1", "ch-1"))
	require.NoError(t, service.RecordView(context.Background(), "user-1", "ch-2"))
	require.NoError(t, service.RecordView(context.Background(), "user-2", "ch-1"))

	require.NoError(t, service.ClearHistory(context.Background(), "user-1"))

	_, totalOne, err := service.ListHistory(context.Background(), "user-1", 20, 0)
	require.NoError(t, err)
	assert.Zero(t, totalOne)

	// Other readers keep their trail.
	_, totalTwo, err := service.ListHistory(context.Background(), "user-2", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, totalTwo)

	// Clearing twice is harmless.
	require.NoError(t, service.ClearHistory(context.Background(), "user-1"))
}
