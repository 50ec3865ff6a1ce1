package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidol/bookly/internal/platform/database/schema"
	"github.com/tidol/bookly/internal/platform/dberr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (repository *postgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s`,
		schema.BooklyGenre.ID, schema.BooklyGenre.Name, schema.BooklyGenre.Slug,
		schema.BooklyGenre.CreatedAt,
		schema.BooklyGenre.Table,
		schema.BooklyGenre.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		genre := &Genre{}
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug, &genre.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

func (repository *postgresRepository) CreateGenre(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.BooklyGenre.Table,
		schema.BooklyGenre.ID, schema.BooklyGenre.Name, schema.BooklyGenre.Slug,
		schema.BooklyGenre.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query, genre.ID, genre.Name, genre.Slug).
		Scan(&genre.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_genre")
	}
	return nil
}

func (repository *postgresRepository) DeleteGenre(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BooklyGenre.Table, schema.BooklyGenre.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
