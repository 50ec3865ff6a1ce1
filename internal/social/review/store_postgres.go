// Copyright (c) 2026 Bookly. All rights reserved.

package review

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

// NewPostgresRepository constructs a PostgreSQL backed review store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (repository *postgresRepository) ListByBook(context context.Context, bookID string, limit, offset int) ([]*Review, int, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, u.%s, r.%s, r.%s, r.%s, r.%s, r.%s,
		       COUNT(*) OVER() AS total_count
		  FROM %s r
		  JOIN %s u ON r.%s = u.%s
		 WHERE r.%s = $1
		 ORDER BY r.%s DESC
		 LIMIT $2 OFFSET $3`,
		schema.BooklyReview.ID, schema.BooklyReview.UserID, schema.UsersAccount.Username,
		schema.BooklyReview.BookID, schema.BooklyReview.Score, schema.BooklyReview.Body,
		schema.BooklyReview.CreatedAt, schema.BooklyReview.UpdatedAt,
		schema.BooklyReview.Table,
		schema.UsersAccount.Table, schema.BooklyReview.UserID, schema.UsersAccount.ID,
		schema.BooklyReview.BookID,
		schema.BooklyReview.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	var reviews []*Review
	var total int
	for rows.Next() {
		review := &Review{}
		err := rows.Scan(
			&review.ID, &review.UserID, &review.Username,
			&review.BookID, &review.Score, &review.Body,
			&review.CreatedAt, &review.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, review)
	}

	return reviews, total, nil
}

func (repository *postgresRepository) FindByID(context context.Context, id string) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, u.%s, r.%s, r.%s, r.%s, r.%s, r.%s
		  FROM %s r
		  JOIN %s u ON r.%s = u.%s
		 WHERE r.%s = $1`,
		schema.BooklyReview.ID, schema.BooklyReview.UserID, schema.UsersAccount.Username,
		schema.BooklyReview.BookID, schema.BooklyReview.Score, schema.BooklyReview.Body,
		schema.BooklyReview.CreatedAt, schema.BooklyReview.UpdatedAt,
		schema.BooklyReview.Table,
		schema.UsersAccount.Table, schema.BooklyReview.UserID, schema.UsersAccount.ID,
		schema.BooklyReview.ID,
	)

	review := &Review{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&review.ID, &review.UserID, &review.Username,
		&review.BookID, &review.Score, &review.Body,
		&review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_review_by_id")
	}
	return review, nil
}

// Create persists a review row. The book FK turns an unknown book into
// NotFound; the (userid, bookid) unique constraint turns a second review
// into Conflict.
func (repository *postgresRepository) Create(context context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		schema.BooklyReview.Table,
		schema.BooklyReview.ID, schema.BooklyReview.UserID, schema.BooklyReview.BookID,
		schema.BooklyReview.Score, schema.BooklyReview.Body,
		schema.BooklyReview.CreatedAt, schema.BooklyReview.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		review.ID, review.UserID, review.BookID, review.Score, review.Body,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_review")
	}
	return nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BooklyReview.Table, schema.BooklyReview.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
