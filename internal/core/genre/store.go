package genre

import "context"

// Repository defines the data access contract for genres.
type Repository interface {
	// ListGenres returns every genre ordered by name.
	ListGenres(context context.Context) ([]*Genre, error)

	// CreateGenre persists a new genre. Returns Conflict when the name or
	// slug is already taken.
	CreateGenre(context context.Context, genre *Genre) error

	// DeleteGenre removes a genre; junction rows cascade.
	DeleteGenre(context context.Context, id string) error
}
