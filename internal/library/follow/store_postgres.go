// Copyright (c) 2026 Bookly. All rights reserved.

package follow

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidol/bookly/internal/platform/database/schema"
	"github.com/tidol/bookly/internal/platform/dberr"
)

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed follow store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// followProjection selects a follow joined to its book and, via a lateral
// join, the book's latest chapter. Chapterless books yield NULLs.
func followProjection() string {
	return fmt.Sprintf(`
		SELECT f.%s, f.%s, b.%s, b.%s, b.%s,
		       lc.%s, lc.%s, lc.%s, lc.%s,
		       f.%s`,
		schema.BooklyFollow.ID, schema.BooklyFollow.UserID,
		schema.BooklyBook.ID, schema.BooklyBook.Title, schema.BooklyBook.Slug,
		schema.BooklyChapter.ID, schema.BooklyChapter.Number,
		schema.BooklyChapter.Title, schema.BooklyChapter.UpdatedAt,
		schema.BooklyFollow.CreatedAt,
	)
}

// followFromClause joins follow to book and laterally resolves the latest
// chapter, most recently updated first with number as the tie-break.
func followFromClause() string {
	return fmt.Sprintf(`
		  FROM %s f
		  JOIN %s b ON f.%s = b.%s
		  LEFT JOIN LATERAL (
			SELECT c.%s, c.%s, c.%s, c.%s
			  FROM %s c
			 WHERE c.%s = b.%s
			 ORDER BY c.%s DESC, c.%s DESC
			 LIMIT 1
		  ) lc ON TRUE`,
		schema.BooklyFollow.Table,
		schema.BooklyBook.Table, schema.BooklyFollow.BookID, schema.BooklyBook.ID,
		schema.BooklyChapter.ID, schema.BooklyChapter.Number,
		schema.BooklyChapter.Title, schema.BooklyChapter.UpdatedAt,
		schema.BooklyChapter.Table,
		schema.BooklyChapter.BookID, schema.BooklyBook.ID,
		schema.BooklyChapter.UpdatedAt, schema.BooklyChapter.Number,
	)
}

// scanFollow hydrates one projected row, folding the nullable lateral
// columns into an optional ChapterRef.
func scanFollow(row pgx.Row, extra ...any) (*Follow, error) {
	follow := &Follow{}
	var chapterID, chapterTitle *string
	var chapterNumber *float64
	var chapterUpdatedAt *time.Time

	targets := []any{
		&follow.ID, &follow.UserID, &follow.BookID, &follow.BookTitle, &follow.BookSlug,
		&chapterID, &chapterNumber, &chapterTitle, &chapterUpdatedAt,
		&follow.CreatedAt,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	if chapterID != nil {
		follow.LatestChapter = &ChapterRef{
			ID:        *chapterID,
			Number:    *chapterNumber,
			Title:     *chapterTitle,
			UpdatedAt: *chapterUpdatedAt,
		}
	}
	return follow, nil
}

// Create persists a follow row. The book FK turns an unknown book into
// NotFound; the (userid, bookid) unique constraint turns a repeat follow
// into Conflict.
func (repository *postgresRepository) Create(context context.Context, id, userID, bookID string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.BooklyFollow.Table,
		schema.BooklyFollow.ID, schema.BooklyFollow.UserID, schema.BooklyFollow.BookID,
	)

	if _, err := repository.pool.Exec(context, query, id, userID, bookID); err != nil {
		return dberr.Wrap(err, "create_follow")
	}
	return nil
}

func (repository *postgresRepository) FindByUserAndBook(context context.Context, userID, bookID string) (*Follow, error) {
	query := followProjection() + followFromClause() + fmt.Sprintf(` WHERE f.%s = $1 AND f.%s = $2`,
		schema.BooklyFollow.UserID, schema.BooklyFollow.BookID,
	)

	follow, err := scanFollow(repository.pool.QueryRow(context, query, userID, bookID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_follow")
	}
	return follow, nil
}

func (repository *postgresRepository) ListByUser(context context.Context, userID string, limit, offset int) ([]*Follow, int, error) {
	query := followProjection() + `, COUNT(*) OVER() AS total_count` + followFromClause() +
		fmt.Sprintf(` WHERE f.%s = $1 ORDER BY f.%s DESC LIMIT $2 OFFSET $3`,
			schema.BooklyFollow.UserID, schema.BooklyFollow.CreatedAt,
		)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_follows")
	}
	defer rows.Close()

	var follows []*Follow
	var total int
	for rows.Next() {
		follow, err := scanFollow(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_follow")
		}
		follows = append(follows, follow)
	}

	return follows, total, nil
}

func (repository *postgresRepository) Delete(context context.Context, userID, bookID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.BooklyFollow.Table,
		schema.BooklyFollow.UserID, schema.BooklyFollow.BookID,
	)

	tag, err := repository.pool.Exec(context, query, userID, bookID)
	if err != nil {
		return dberr.Wrap(err, "delete_follow")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
