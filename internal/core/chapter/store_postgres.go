// Copyright (c) 2026 Bookly. All rights reserved.

package chapter

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

// NewPostgresRepository constructs a PostgreSQL backed chapter store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// viewCountSubquery counts history rows against a chapter aliased `c`.
func viewCountSubquery() string {
	return fmt.Sprintf(`(SELECT COUNT(*) FROM %s h WHERE h.%s = c.%s)`,
		schema.BooklyHistory.Table, schema.BooklyHistory.ChapterID, schema.BooklyChapter.ID,
	)
}

/*
ListByBook retrieves the ordered chapter index of a book.

Description: The projection deliberately excludes the content column so the
index stays cheap even for long-form books. The total rides along via a
window function.

Parameters:
  - context: context.Context
  - bookID: string
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Chapter: Ordered chapter summaries
  - int: Total chapter count for the book
  - error: Execution failures
*/
func (repository *postgresRepository) ListByBook(context context.Context, bookID string, filter Filter, limit, offset int) ([]*Chapter, int, error) {
	direction := "ASC"
	if filter.SortDir == "desc" {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, %s AS viewcount, c.%s, c.%s,
		       COUNT(*) OVER() AS total_count
		  FROM %s c
		 WHERE c.%s = $1
		 ORDER BY c.%s %s
		 LIMIT $2 OFFSET $3`,
		schema.BooklyChapter.ID, schema.BooklyChapter.BookID, schema.BooklyChapter.Number,
		schema.BooklyChapter.Title, viewCountSubquery(),
		schema.BooklyChapter.CreatedAt, schema.BooklyChapter.UpdatedAt,
		schema.BooklyChapter.Table,
		schema.BooklyChapter.BookID,
		schema.BooklyChapter.Number, direction,
	)

	rows, err := repository.pool.Query(context, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_chapters")
	}
	defer rows.Close()

	var chapters []*Chapter
	var total int
	for rows.Next() {
		chapter := &Chapter{}
		err := rows.Scan(
			&chapter.ID, &chapter.BookID, &chapter.Number, &chapter.Title,
			&chapter.ViewCount, &chapter.CreatedAt, &chapter.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_chapter")
		}
		chapters = append(chapters, chapter)
	}

	return chapters, total, nil
}

/*
FindByID retrieves a full chapter with content, view count and the account
owning the parent book.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Chapter: Hydrated entity
  - error: NotFound or execution failures
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Chapter, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, %s AS viewcount, a.%s, c.%s, c.%s
		  FROM %s c
		  JOIN %s b ON c.%s = b.%s
		  JOIN %s a ON b.%s = a.%s
		 WHERE c.%s = $1`,
		schema.BooklyChapter.ID, schema.BooklyChapter.BookID, schema.BooklyChapter.Number,
		schema.BooklyChapter.Title, schema.BooklyChapter.Content, viewCountSubquery(),
		schema.BooklyAuthor.UserID,
		schema.BooklyChapter.CreatedAt, schema.BooklyChapter.UpdatedAt,
		schema.BooklyChapter.Table,
		schema.BooklyBook.Table, schema.BooklyChapter.BookID, schema.BooklyBook.ID,
		schema.BooklyAuthor.Table, schema.BooklyBook.AuthorID, schema.BooklyAuthor.ID,
		schema.BooklyChapter.ID,
	)

	chapter := &Chapter{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&chapter.ID, &chapter.BookID, &chapter.Number, &chapter.Title, &chapter.Content,
		&chapter.ViewCount, &chapter.OwnerID, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_chapter_by_id")
	}
	return chapter, nil
}

/*
Create persists a new chapter row.

Parameters:
  - context: context.Context
  - chapter: *Chapter

Returns:
  - error: Conflict when the (book, number) pair already exists; NotFound
    when the book row is gone; other persistence failures
*/
func (repository *postgresRepository) Create(context context.Context, chapter *Chapter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		schema.BooklyChapter.Table,
		schema.BooklyChapter.ID, schema.BooklyChapter.BookID, schema.BooklyChapter.Number,
		schema.BooklyChapter.Title, schema.BooklyChapter.Content,
		schema.BooklyChapter.CreatedAt, schema.BooklyChapter.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		chapter.ID, chapter.BookID, chapter.Number, chapter.Title, chapter.Content,
	).Scan(&chapter.CreatedAt, &chapter.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_chapter")
	}
	return nil
}

/*
Update persists number, title and content of an existing chapter.

Parameters:
  - context: context.Context
  - chapter: *Chapter

Returns:
  - error: NotFound when the row is gone; Conflict on a duplicate
    (book, number) pair; other persistence failures
*/
func (repository *postgresRepository) Update(context context.Context, chapter *Chapter) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = NOW()
		 WHERE %s = $4
		RETURNING %s`,
		schema.BooklyChapter.Table,
		schema.BooklyChapter.Number, schema.BooklyChapter.Title, schema.BooklyChapter.Content,
		schema.BooklyChapter.UpdatedAt,
		schema.BooklyChapter.ID,
		schema.BooklyChapter.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		chapter.Number, chapter.Title, chapter.Content, chapter.ID,
	).Scan(&chapter.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_chapter")
	}
	return nil
}

/*
Delete permanently removes a chapter; dependent rows cascade.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound when the row is gone, or execution failures
*/
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BooklyChapter.Table, schema.BooklyChapter.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_chapter")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
