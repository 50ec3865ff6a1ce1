package author

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidol/bookly/internal/platform/database/schema"
	"github.com/tidol/bookly/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAuthors(context context.Context, f Filter, limit, offset int) ([]*Author, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.BooklyAuthor.ID, schema.BooklyAuthor.UserID, schema.BooklyAuthor.Name,
		schema.BooklyAuthor.Bio, schema.BooklyAuthor.CreatedAt, schema.BooklyAuthor.UpdatedAt,
		schema.BooklyAuthor.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.BooklyAuthor.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` WHERE name ILIKE $1`
		countQuery += ` WHERE name ILIKE $1`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.BooklyAuthor.Name) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, total, nil
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.BooklyAuthor.ID, schema.BooklyAuthor.UserID, schema.BooklyAuthor.Name,
		schema.BooklyAuthor.Bio, schema.BooklyAuthor.CreatedAt, schema.BooklyAuthor.UpdatedAt,
		schema.BooklyAuthor.Table, schema.BooklyAuthor.ID,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return a, nil
}

func (repository *PostgresRepository) GetAuthorByUserID(context context.Context, userID string) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.BooklyAuthor.ID, schema.BooklyAuthor.UserID, schema.BooklyAuthor.Name,
		schema.BooklyAuthor.Bio, schema.BooklyAuthor.CreatedAt, schema.BooklyAuthor.UpdatedAt,
		schema.BooklyAuthor.Table, schema.BooklyAuthor.UserID,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, userID).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "get_author_by_user")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.BooklyAuthor.Table, schema.BooklyAuthor.ID, schema.BooklyAuthor.UserID,
		schema.BooklyAuthor.Name, schema.BooklyAuthor.Bio,
		schema.BooklyAuthor.CreatedAt, schema.BooklyAuthor.UpdatedAt,
		schema.BooklyAuthor.CreatedAt, schema.BooklyAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.UserID, a.Name, a.Bio).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.BooklyAuthor.Table, schema.BooklyAuthor.Name, schema.BooklyAuthor.Bio,
		schema.BooklyAuthor.UpdatedAt, schema.BooklyAuthor.ID, schema.BooklyAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.Name, a.Bio).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_author")
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BooklyAuthor.Table, schema.BooklyAuthor.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
