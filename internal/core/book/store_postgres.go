// Copyright (c) 2026 Bookly. All rights reserved.

/*
PostgreSQL implementation for the catalogue's data access.

It leans on Postgres features to keep reads single-round-trip:
  - JSON Aggregation: Retrieves associated genres without N+1 queries.
  - Window Functions: Calculates total result counts in the list query itself.
  - Lateral Joins: Resolves the latest chapter per book for the updates feed.
  - ACID Transactions: Ensures atomicity across the book and genre junction.

View counts are aggregated from reading history at query time; no counter
column exists to drift out of sync.
*/
package book

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidol/bookly/internal/platform/database/schema"
	"github.com/tidol/bookly/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed book store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// selectColumns is the shared projection for hydrating a full Book row.
// viewcount aggregates distinct (user, chapter) reads across the book's
// chapters; genres arrive as a JSON array in a single round-trip.
func selectColumns() string {
	return fmt.Sprintf(`
		b.%s, b.%s, a.%s, a.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		(SELECT COUNT(*)
		   FROM %s h
		   JOIN %s ch ON h.%s = ch.%s
		  WHERE ch.%s = b.%s) AS viewcount,
		COALESCE((SELECT json_agg(json_build_object('id', g.%s, 'name', g.%s, 'slug', g.%s) ORDER BY g.%s)
		   FROM %s bg
		   JOIN %s g ON bg.%s = g.%s
		  WHERE bg.%s = b.%s), '[]') AS genres`,
		schema.BooklyBook.ID, schema.BooklyBook.AuthorID, schema.BooklyAuthor.Name, schema.BooklyAuthor.UserID,
		schema.BooklyBook.Title, schema.BooklyBook.Slug, schema.BooklyBook.Description, schema.BooklyBook.CoverURL,
		schema.BooklyBook.CreatedAt, schema.BooklyBook.UpdatedAt,
		schema.BooklyHistory.Table,
		schema.BooklyChapter.Table, schema.BooklyHistory.ChapterID, schema.BooklyChapter.ID,
		schema.BooklyChapter.BookID, schema.BooklyBook.ID,
		schema.BooklyGenre.ID, schema.BooklyGenre.Name, schema.BooklyGenre.Slug, schema.BooklyGenre.Name,
		schema.BooklyBookGenre.Table,
		schema.BooklyGenre.Table, schema.BooklyBookGenre.GenreID, schema.BooklyGenre.ID,
		schema.BooklyBookGenre.BookID, schema.BooklyBook.ID,
	)
}

// fromClause joins the book to its attributed author profile.
func fromClause() string {
	return fmt.Sprintf(`FROM %s b JOIN %s a ON b.%s = a.%s`,
		schema.BooklyBook.Table, schema.BooklyAuthor.Table,
		schema.BooklyBook.AuthorID, schema.BooklyAuthor.ID,
	)
}

// scanBook hydrates one projected row, decoding the genre JSON payload.
func scanBook(row pgx.Row) (*Book, error) {
	book := &Book{}
	var genresJSON []byte

	err := row.Scan(
		&book.ID, &book.AuthorID, &book.AuthorName, &book.OwnerID,
		&book.Title, &book.Slug, &book.Description, &book.CoverURL,
		&book.CreatedAt, &book.UpdatedAt,
		&book.ViewCount, &genresJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(genresJSON, &book.Genres); err != nil {
		return nil, fmt.Errorf("postgres: failed to decode genres: %w", err)
	}
	return book, nil
}

/*
List retrieves a filtered, paginated catalogue slice.

Description: Builds the query dynamically from the filter. The total count
rides along via a window function to avoid a second round-trip.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Book: Hydrated catalogue records
  - int: Total matching count
  - error: Execution failures
*/
func (repository *postgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString("SELECT " + selectColumns() + ", COUNT(*) OVER() AS total_count " + fromClause() + " WHERE TRUE")

	// Substring title search
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s ILIKE $%d", schema.BooklyBook.Title, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	// Genre restriction via junction existence
	if filter.GenreSlug != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s bg2 JOIN %s g2 ON bg2.%s = g2.%s WHERE bg2.%s = b.%s AND g2.%s = $%d)",
			schema.BooklyBookGenre.Table, schema.BooklyGenre.Table,
			schema.BooklyBookGenre.GenreID, schema.BooklyGenre.ID,
			schema.BooklyBookGenre.BookID, schema.BooklyBook.ID,
			schema.BooklyGenre.Slug, argID,
		))
		args = append(args, filter.GenreSlug)
		argID++
	}

	// Author profile restriction
	if filter.AuthorID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", schema.BooklyBook.AuthorID, argID))
		args = append(args, filter.AuthorID)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.%s DESC", schema.BooklyBook.CreatedAt))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	var totalCount int

	for rows.Next() {
		book := &Book{}
		var genresJSON []byte

		err := rows.Scan(
			&book.ID, &book.AuthorID, &book.AuthorName, &book.OwnerID,
			&book.Title, &book.Slug, &book.Description, &book.CoverURL,
			&book.CreatedAt, &book.UpdatedAt,
			&book.ViewCount, &genresJSON,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		if err := json.Unmarshal(genresJSON, &book.Genres); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to decode genres: %w", err)
		}
		books = append(books, book)
	}

	return books, totalCount, nil
}

// FindByID resolves a book by primary key.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Book, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE b.%s = $1", selectColumns(), fromClause(), schema.BooklyBook.ID)

	book, err := scanBook(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_book_by_id")
	}
	return book, nil
}

// FindBySlug resolves a book by its unique URL slug.
func (repository *postgresRepository) FindBySlug(context context.Context, slug string) (*Book, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE b.%s = $1", selectColumns(), fromClause(), schema.BooklyBook.Slug)

	book, err := scanBook(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "find_book_by_slug")
	}
	return book, nil
}

/*
Create persists a new book and its genre associations atomically.

Description: Runs inside a transaction so a junction failure rolls back the
book row as well.

Parameters:
  - context: context.Context
  - book: *Book

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *postgresRepository) Create(context context.Context, book *Book) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.BooklyBook.Table,
		schema.BooklyBook.ID, schema.BooklyBook.AuthorID, schema.BooklyBook.Title, schema.BooklyBook.Slug,
		schema.BooklyBook.Description, schema.BooklyBook.CoverURL,
		schema.BooklyBook.CreatedAt, schema.BooklyBook.UpdatedAt,
		schema.BooklyBook.CreatedAt, schema.BooklyBook.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		book.ID, book.AuthorID, book.Title, book.Slug, book.Description, book.CoverURL,
	).Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_book")
	}

	if len(book.GenreIDs) > 0 {
		if err := repository.updateJunction(context, transaction, book.ID, book.GenreIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}
	return nil
}

/*
Update persists metadata changes and rewrites the genre junction.

Description: GenreIDs == nil leaves associations untouched; an empty non-nil
slice clears them.

Parameters:
  - context: context.Context
  - book: *Book

Returns:
  - error: NotFound, constraint violations or connectivity errors
*/
func (repository *postgresRepository) Update(context context.Context, book *Book) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
	`,
		schema.BooklyBook.Table,
		schema.BooklyBook.Title, schema.BooklyBook.Description, schema.BooklyBook.CoverURL,
		schema.BooklyBook.UpdatedAt, schema.BooklyBook.ID,
	)

	response, err := transaction.Exec(context, query, book.ID, book.Title, book.Description, book.CoverURL)
	if err != nil {
		return dberr.Wrap(err, "update_book")
	}
	if response.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if book.GenreIDs != nil {
		if err := repository.updateJunction(context, transaction, book.ID, book.GenreIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}
	return nil
}

// Delete permanently removes a book; dependent rows cascade.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.BooklyBook.Table, schema.BooklyBook.ID)

	response, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}
	if response.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
ListRecentlyUpdated resolves the updates feed.

Description: A lateral join picks the single latest chapter per book
(newest updatedat, highest number as tie-break), which both deduplicates
books and carries the chapter projection in one query. Books without
chapters never appear.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []*Update: Feed entries, newest first
  - error: Execution failures
*/
func (repository *postgresRepository) ListRecentlyUpdated(context context.Context, limit int) ([]*Update, error) {
	query := fmt.Sprintf(`
		SELECT
			b.%s, b.%s, a.%s, a.%s, b.%s, b.%s, b.%s,
			c.%s, c.%s, c.%s, c.%s
		FROM %s b
		JOIN %s a ON b.%s = a.%s
		JOIN LATERAL (
			SELECT %s, %s, %s, %s
			FROM %s
			WHERE %s = b.%s
			ORDER BY %s DESC, %s DESC
			LIMIT 1
		) c ON TRUE
		ORDER BY c.%s DESC
		LIMIT $1
	`,
		schema.BooklyBook.ID, schema.BooklyBook.AuthorID, schema.BooklyAuthor.Name, schema.BooklyAuthor.UserID,
		schema.BooklyBook.Title, schema.BooklyBook.Slug, schema.BooklyBook.CoverURL,
		schema.BooklyChapter.ID, schema.BooklyChapter.Number, schema.BooklyChapter.Title, schema.BooklyChapter.UpdatedAt,
		schema.BooklyBook.Table,
		schema.BooklyAuthor.Table, schema.BooklyBook.AuthorID, schema.BooklyAuthor.ID,
		schema.BooklyChapter.ID, schema.BooklyChapter.Number, schema.BooklyChapter.Title, schema.BooklyChapter.UpdatedAt,
		schema.BooklyChapter.Table,
		schema.BooklyChapter.BookID, schema.BooklyBook.ID,
		schema.BooklyChapter.UpdatedAt, schema.BooklyChapter.Number,
		schema.BooklyChapter.UpdatedAt,
	)

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_recent_updates")
	}
	defer rows.Close()

	var updates []*Update
	for rows.Next() {
		book := &Book{Genres: []GenreRef{}}
		chapter := &ChapterRef{}

		err := rows.Scan(
			&book.ID, &book.AuthorID, &book.AuthorName, &book.OwnerID,
			&book.Title, &book.Slug, &book.CoverURL,
			&chapter.ID, &chapter.Number, &chapter.Title, &chapter.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_recent_update")
		}
		updates = append(updates, &Update{Book: book, LatestChapter: chapter})
	}

	return updates, nil
}

// updateJunction synchronizes the book's genre associations with a
// clear-and-insert strategy inside the caller's transaction.
func (repository *postgresRepository) updateJunction(context context.Context, transaction pgx.Tx, bookID string, genreIDs []string) error {
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.BooklyBookGenre.Table, schema.BooklyBookGenre.BookID)
	if _, err := transaction.Exec(context, delQuery, bookID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", schema.BooklyBookGenre.Table, err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.BooklyBookGenre.Table, schema.BooklyBookGenre.BookID, schema.BooklyBookGenre.GenreID)
	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insQuery, bookID, genreID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "replace_book_genres")
	}

	return nil
}
