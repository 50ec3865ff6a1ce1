package genre

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/slug"
	"github.com/tidol/bookly/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

// CreateGenre adds a new category label. Moderation-gated at the route
// level; the slug is derived from the name.
func (service *Service) CreateGenre(context context.Context, genre *Genre) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, genre.Name).MaxLen(FieldName, genre.Name, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	genre.ID = uuid.New()
	genre.Slug = slug.From(genre.Name)

	if err := service.repo.CreateGenre(context, genre); err != nil {
		return err
	}

	service.logger.Info("genre_created", slog.String("genre_id", genre.ID), slog.String("slug", genre.Slug))
	return nil
}

// DeleteGenre removes a category label; books lose the tag, nothing else.
func (service *Service) DeleteGenre(context context.Context, id string) error {
	if err := service.repo.DeleteGenre(context, id); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.String("genre_id", id))
	return nil
}
