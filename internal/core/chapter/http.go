// Copyright (c) 2026 Bookly. All rights reserved.

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/ctxutil"
	"github.com/tidol/bookly/internal/platform/middleware"
	requestutil "github.com/tidol/bookly/internal/platform/request"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/pkg/pagination"
)

// Handler implements chapter-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the chapter routes addressed by chapter ID.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.readChapter)

	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Patch("/{id}", handler.updateChapter)
		authedRoute.Delete("/{id}", handler.deleteChapter)
	})

	// Full replacement is deliberately unsupported; partial updates only.
	router.Put("/{id}", handler.putNotAllowed)
}

// RegisterBookRoutes mounts the routes nested under a book:
// the chapter index and chapter creation.
func (handler *Handler) RegisterBookRoutes(router chi.Router) {
	router.Get("/{id}/chapters", handler.listChapters)

	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Post("/{id}/chapters", handler.createChapter)
	})
}

/*
ListChapters returns a book's paginated chapter index.

GET /api/v1/books/{id}/chapters?sort=asc|desc

Response:
  - 200: Paginated []Chapter without content bodies
*/
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")
	paginationParams := pagination.FromRequest(request)

	filter := Filter{SortDir: request.URL.Query().Get("sort")}

	chapters, total, err := handler.service.ListChapters(request.Context(), bookID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, chapters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
ReadChapter fetches a full chapter. Authenticated readers leave a trace in
their reading history as a side effect.

GET /api/v1/chapters/{id}

Response:
  - 200: Chapter with content
  - 404: ErrNotFound
*/
func (handler *Handler) readChapter(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	chapter, err := handler.service.ReadChapter(request.Context(), claims, chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapter)
}

/*
CreateChapter publishes a new chapter under a book.

POST /api/v1/books/{id}/chapters

Response:
  - 201: Chapter
  - 403: ErrForbidden: Caller does not own the book
  - 409: ErrConflict: Chapter number already taken within the book
*/
func (handler *Handler) createChapter(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	var input Chapter
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateChapter(request.Context(), claims, bookID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

/*
UpdateChapter applies a partial modification to a chapter.

PATCH /api/v1/chapters/{id}

Response:
  - 200: Chapter
  - 400: ErrValidation: Attempt to move the chapter to another book
  - 403: ErrForbidden: Caller is not the owning author
  - 404: ErrNotFound
  - 409: ErrConflict: Chapter number already taken within the book
*/
func (handler *Handler) updateChapter(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.UpdateChapter(request.Context(), claims, chapterID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapter)
}

/*
DeleteChapter removes a chapter and everything beneath it.

DELETE /api/v1/chapters/{id}

Response:
  - 204: No Content
  - 403: ErrForbidden: Caller is neither owner nor moderator
  - 404: ErrNotFound
*/
func (handler *Handler) deleteChapter(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	if err := handler.service.DeleteChapter(request.Context(), claims, chapterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) putNotAllowed(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.MethodNotAllowed("Use PATCH for partial updates"))
}
