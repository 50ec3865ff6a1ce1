package author

import (
	"context"
	"log/slog"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/validate"
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

func (service *Service) ListAuthors(context context.Context, filter Filter, limit, offset int) ([]*Author, int, error) {
	return service.repo.ListAuthors(context, filter, limit, offset)
}

func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

// GetOwnProfile returns the author profile owned by the given account.
func (service *Service) GetOwnProfile(context context.Context, userID string) (*Author, error) {
	return service.repo.GetAuthorByUserID(context, userID)
}

// ProfileByUserID resolves the profile ID and display name for an account.
// Used by the book domain to attribute new books without an import cycle.
func (service *Service) ProfileByUserID(context context.Context, userID string) (string, string, error) {
	profile, err := service.repo.GetAuthorByUserID(context, userID)
	if err != nil {
		return "", "", err
	}
	return profile.ID, profile.Name, nil
}

// CreateProfile creates the author profile for an account. Each account can
// hold at most one profile.
func (service *Service) CreateProfile(context context.Context, userID string, author *Author) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	validator.MaxLen(FieldBio, author.Bio, 2000)

	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repo.GetAuthorByUserID(context, userID); err == nil {
		return apperr.Conflict("Author profile already exists")
	}

	author.ID = uuid.New()
	author.UserID = userID

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_profile_created", slog.String("author_id", author.ID), slog.String("user_id", userID))
	return nil
}

// UpdateProfile replaces the mutable fields of the caller's own profile.
func (service *Service) UpdateProfile(context context.Context, userID string, author *Author) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	validator.MaxLen(FieldBio, author.Bio, 2000)

	if err := validator.Err(); err != nil {
		return err
	}

	existing, err := service.repo.GetAuthorByUserID(context, userID)
	if err != nil {
		return err
	}

	existing.Name = author.Name
	existing.Bio = author.Bio

	if err := service.repo.UpdateAuthor(context, existing); err != nil {
		return err
	}
	*author = *existing

	service.logger.Info("author_profile_updated", slog.String("author_id", existing.ID))
	return nil
}

// DeleteProfile removes the caller's own profile. Books attributed to the
// profile are removed by the storage cascade.
func (service *Service) DeleteProfile(context context.Context, userID string) error {
	existing, err := service.repo.GetAuthorByUserID(context, userID)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteAuthor(context, existing.ID); err != nil {
		return err
	}

	service.logger.Warn("author_profile_deleted", slog.String("author_id", existing.ID))
	return nil
}
