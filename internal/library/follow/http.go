// Copyright (c) 2026 Bookly. All rights reserved.

package follow

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidol/bookly/internal/platform/middleware"
	requestutil "github.com/tidol/bookly/internal/platform/request"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/pkg/pagination"
)

// Handler implements follow HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the follow routes. Everything here is scoped to
// the authenticated caller; deletion addresses the book, not the follow row.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listFollows)
	router.Post("/", handler.followBook)
	router.Delete("/{bookID}", handler.unfollowBook)
}

type followInput struct {
	BookID string `json:"book_id"`
}

/*
FollowBook subscribes the caller to a book.

POST /api/v1/follows

Response:
  - 201: Follow with the book's latest chapter
  - 404: ErrNotFound: Unknown book
  - 409: ErrConflict: Already following
*/
func (handler *Handler) followBook(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input followInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	follow, err := handler.service.FollowBook(request.Context(), userID, input.BookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, follow)
}

/*
ListFollows returns the caller's subscriptions, newest first, each with the
book's latest chapter.

GET /api/v1/follows

Response:
  - 200: Paginated []Follow
*/
func (handler *Handler) listFollows(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	follows, total, err := handler.service.ListFollows(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, follows, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
UnfollowBook removes the caller's subscription to a book.

DELETE /api/v1/follows/{bookID}

Response:
  - 204: No Content
  - 404: ErrNotFound: Caller was not following the book
*/
func (handler *Handler) unfollowBook(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID := requestutil.ID(request, "bookID")

	if err := handler.service.UnfollowBook(request.Context(), userID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
