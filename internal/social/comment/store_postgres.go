// Copyright (c) 2026 Bookly. All rights reserved.

package comment

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

// NewPostgresRepository constructs a PostgreSQL backed comment store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (repository *postgresRepository) ListByChapter(context context.Context, chapterID string, limit, offset int) ([]*Comment, int, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, u.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
		       COUNT(*) OVER() AS total_count
		  FROM %s c
		  JOIN %s u ON c.%s = u.%s
		 WHERE c.%s = $1
		 ORDER BY c.%s ASC
		 LIMIT $2 OFFSET $3`,
		schema.BooklyComment.ID, schema.BooklyComment.UserID, schema.UsersAccount.Username,
		schema.BooklyComment.ChapterID, schema.BooklyComment.ParentID, schema.BooklyComment.Body,
		schema.BooklyComment.CreatedAt, schema.BooklyComment.UpdatedAt,
		schema.BooklyComment.Table,
		schema.UsersAccount.Table, schema.BooklyComment.UserID, schema.UsersAccount.ID,
		schema.BooklyComment.ChapterID,
		schema.BooklyComment.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, chapterID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []*Comment
	var total int
	for rows.Next() {
		comment := &Comment{}
		err := rows.Scan(
			&comment.ID, &comment.UserID, &comment.Username,
			&comment.ChapterID, &comment.ParentID, &comment.Body,
			&comment.CreatedAt, &comment.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}

	return comments, total, nil
}

func (repository *postgresRepository) FindByID(context context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, u.%s, c.%s, c.%s, c.%s, c.%s, c.%s
		  FROM %s c
		  JOIN %s u ON c.%s = u.%s
		 WHERE c.%s = $1`,
		schema.BooklyComment.ID, schema.BooklyComment.UserID, schema.UsersAccount.Username,
		schema.BooklyComment.ChapterID, schema.BooklyComment.ParentID, schema.BooklyComment.Body,
		schema.BooklyComment.CreatedAt, schema.BooklyComment.UpdatedAt,
		schema.BooklyComment.Table,
		schema.UsersAccount.Table, schema.BooklyComment.UserID, schema.UsersAccount.ID,
		schema.BooklyComment.ID,
	)

	comment := &Comment{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&comment.ID, &comment.UserID, &comment.Username,
		&comment.ChapterID, &comment.ParentID, &comment.Body,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_comment_by_id")
	}
	return comment, nil
}

func (repository *postgresRepository) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		schema.BooklyComment.Table,
		schema.BooklyComment.ID, schema.BooklyComment.UserID, schema.BooklyComment.ChapterID,
		schema.BooklyComment.ParentID, schema.BooklyComment.Body,
		schema.BooklyComment.CreatedAt, schema.BooklyComment.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		comment.ID, comment.UserID, comment.ChapterID, comment.ParentID, comment.Body,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_comment")
	}
	return nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BooklyComment.Table, schema.BooklyComment.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
