// Copyright (c) 2026 Bookly. All rights reserved.

package history

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/pkg/uuid"
)

// Service orchestrates reading-history tracking. It satisfies the chapter
// domain's view-recorder contract.
type Service struct {
	historyRepo Repository
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(historyRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// RecordView upserts the (user, chapter) history row. Idempotent at the
// pair level; only the timestamp moves on a repeat view.
func (service *Service) RecordView(context context.Context, userID, chapterID string) error {
	return service.historyRepo.Upsert(context, uuid.New(), userID, chapterID)
}

// ListHistory returns the caller's reading history, most recent first.
func (service *Service) ListHistory(context context.Context, userID string, limit, offset int) ([]*Entry, int, error) {
	return service.historyRepo.ListByUser(context, userID, limit, offset)
}

// ClearHistory wipes the caller's reading history. View counts derived
// from these rows drop accordingly.
func (service *Service) ClearHistory(context context.Context, userID string) error {
	if err := service.historyRepo.ClearByUser(context, userID); err != nil {
		return err
	}

	service.logger.Info("history_cleared", slog.String("user_id", userID))
	return nil
}
