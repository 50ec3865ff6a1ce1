// Copyright (c) 2026 Bookly. All rights reserved.

package bookmark

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

// Handler implements bookmark HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the bookmark routes. Everything here is scoped to
// the authenticated caller.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listBookmarks)
	router.Post("/", handler.createBookmark)
	router.Delete("/{id}", handler.deleteBookmark)

	// Bookmarks are immutable; delete and re-create to move one.
	router.Put("/{id}", handler.editNotAllowed)
	router.Patch("/{id}", handler.editNotAllowed)
}

/*
CreateBookmark saves a reading position.

POST /api/v1/bookmarks

Response:
  - 201: Bookmark
  - 400: ErrValidation: Negative page
  - 404: ErrNotFound: Unknown chapter
  - 409: ErrConflict: Position already saved
*/
func (handler *Handler) createBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Bookmark
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBookmark(request.Context(), userID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

/*
ListBookmarks returns the caller's bookmarks, newest first.

GET /api/v1/bookmarks

Response:
  - 200: Paginated []Bookmark
*/
func (handler *Handler) listBookmarks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	bookmarks, total, err := handler.service.ListBookmarks(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookmarks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
DeleteBookmark removes one of the caller's bookmarks.

DELETE /api/v1/bookmarks/{id}

Response:
  - 204: No Content
  - 403: ErrForbidden: Bookmark belongs to someone else
  - 404: ErrNotFound
*/
func (handler *Handler) deleteBookmark(writer http.ResponseWriter, request *http.Request) {
	bookmarkID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	if err := handler.service.DeleteBookmark(request.Context(), claims, bookmarkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) editNotAllowed(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.MethodNotAllowed("Bookmarks cannot be edited; delete and re-create"))
}
