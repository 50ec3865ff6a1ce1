package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidol/bookly/internal/platform/middleware"
	requestutil "github.com/tidol/bookly/internal/platform/request"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listGenres)

	// Curation is a moderation concern, not an authoring one.
	router.Group(func(moderatorRoute chi.Router) {
		moderatorRoute.Use(middleware.RequireAuth, middleware.RequireRole(sec.RoleModerator))

		moderatorRoute.Post("/", handler.createGenre)
		moderatorRoute.Delete("/{id}", handler.deleteGenre)
	})
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var input Genre
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGenre(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	genreID := requestutil.ID(request, "id")

	if err := handler.service.DeleteGenre(request.Context(), genreID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
