// Copyright (c) 2026 Bookly. All rights reserved.

package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidol/bookly/internal/platform/database/schema"
	"github.com/tidol/bookly/internal/platform/dberr"
)

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed history store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
Upsert records a chapter view as a single atomic statement.

Description: The UNIQUE (userid, chapterid) constraint carries the
idempotency; concurrent first views of the same pair resolve inside
Postgres without a read-modify-write race.

Parameters:
  - context: context.Context
  - id: string
  - userID: string
  - chapterID: string

Returns:
  - error: NotFound when the chapter row is gone, or execution failures
*/
func (repository *postgresRepository) Upsert(context context.Context, id, userID, chapterID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (%s, %s) DO UPDATE SET %s = NOW()`,
		schema.BooklyHistory.Table,
		schema.BooklyHistory.ID, schema.BooklyHistory.UserID,
		schema.BooklyHistory.ChapterID, schema.BooklyHistory.ViewedAt,
		schema.BooklyHistory.UserID, schema.BooklyHistory.ChapterID,
		schema.BooklyHistory.ViewedAt,
	)

	if _, err := repository.pool.Exec(context, query, id, userID, chapterID); err != nil {
		return dberr.Wrap(err, "upsert_history")
	}
	return nil
}

/*
ListByUser retrieves a user's reading history, newest first, joined with
chapter and book titles.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*Entry: Hydrated history records
  - int: Total history size for the user
  - error: Execution failures
*/
func (repository *postgresRepository) ListByUser(context context.Context, userID string, limit, offset int) ([]*Entry, int, error) {
	query := fmt.Sprintf(`
		SELECT h.%s, h.%s, c.%s, c.%s, c.%s, b.%s, b.%s, h.%s,
		       COUNT(*) OVER() AS total_count
		  FROM %s h
		  JOIN %s c ON h.%s = c.%s
		  JOIN %s b ON c.%s = b.%s
		 WHERE h.%s = $1
		 ORDER BY h.%s DESC
		 LIMIT $2 OFFSET $3`,
		schema.BooklyHistory.ID, schema.BooklyHistory.UserID,
		schema.BooklyChapter.ID, schema.BooklyChapter.Number, schema.BooklyChapter.Title,
		schema.BooklyBook.ID, schema.BooklyBook.Title,
		schema.BooklyHistory.ViewedAt,
		schema.BooklyHistory.Table,
		schema.BooklyChapter.Table, schema.BooklyHistory.ChapterID, schema.BooklyChapter.ID,
		schema.BooklyBook.Table, schema.BooklyChapter.BookID, schema.BooklyBook.ID,
		schema.BooklyHistory.UserID,
		schema.BooklyHistory.ViewedAt,
	)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_history")
	}
	defer rows.Close()

	var entries []*Entry
	var total int
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID, &entry.UserID,
			&entry.ChapterID, &entry.ChapterNumber, &entry.ChapterTitle,
			&entry.BookID, &entry.BookTitle,
			&entry.ViewedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_history_entry")
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

/*
ClearByUser deletes all history rows of a user. Clearing an already-empty
history is not an error.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Execution failures
*/
func (repository *postgresRepository) ClearByUser(context context.Context, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BooklyHistory.Table, schema.BooklyHistory.UserID,
	)

	if _, err := repository.pool.Exec(context, query, userID); err != nil {
		return dberr.Wrap(err, "clear_history")
	}
	return nil
}
