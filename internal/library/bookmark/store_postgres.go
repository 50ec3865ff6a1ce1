// Copyright (c) 2026 Bookly. All rights reserved.

package bookmark

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

// NewPostgresRepository constructs a PostgreSQL backed bookmark store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// Create persists a bookmark. The chapter FK turns an unknown chapter into
// NotFound; the (userid, chapterid, page) unique constraint turns a
// duplicate position into Conflict.
func (repository *postgresRepository) Create(context context.Context, bookmark *Bookmark) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		schema.BooklyBookmark.Table,
		schema.BooklyBookmark.ID, schema.BooklyBookmark.UserID,
		schema.BooklyBookmark.ChapterID, schema.BooklyBookmark.Page,
		schema.BooklyBookmark.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		bookmark.ID, bookmark.UserID, bookmark.ChapterID, bookmark.Page,
	).Scan(&bookmark.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_bookmark")
	}
	return nil
}

func (repository *postgresRepository) FindByID(context context.Context, id string) (*Bookmark, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.BooklyBookmark.ID, schema.BooklyBookmark.UserID,
		schema.BooklyBookmark.ChapterID, schema.BooklyBookmark.Page,
		schema.BooklyBookmark.CreatedAt,
		schema.BooklyBookmark.Table,
		schema.BooklyBookmark.ID,
	)

	bookmark := &Bookmark{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&bookmark.ID, &bookmark.UserID, &bookmark.ChapterID, &bookmark.Page, &bookmark.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_bookmark_by_id")
	}
	return bookmark, nil
}

func (repository *postgresRepository) ListByUser(context context.Context, userID string, limit, offset int) ([]*Bookmark, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, COUNT(*) OVER() AS total_count
		  FROM %s
		 WHERE %s = $1
		 ORDER BY %s DESC
		 LIMIT $2 OFFSET $3`,
		schema.BooklyBookmark.ID, schema.BooklyBookmark.UserID,
		schema.BooklyBookmark.ChapterID, schema.BooklyBookmark.Page,
		schema.BooklyBookmark.CreatedAt,
		schema.BooklyBookmark.Table,
		schema.BooklyBookmark.UserID,
		schema.BooklyBookmark.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_bookmarks")
	}
	defer rows.Close()

	var bookmarks []*Bookmark
	var total int
	for rows.Next() {
		bookmark := &Bookmark{}
		err := rows.Scan(
			&bookmark.ID, &bookmark.UserID, &bookmark.ChapterID, &bookmark.Page,
			&bookmark.CreatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_bookmark")
		}
		bookmarks = append(bookmarks, bookmark)
	}

	return bookmarks, total, nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BooklyBookmark.Table, schema.BooklyBookmark.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_bookmark")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
