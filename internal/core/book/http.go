// Copyright (c) 2026 Bookly. All rights reserved.

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/constants"
	"github.com/tidol/bookly/internal/platform/ctxutil"
	"github.com/tidol/bookly/internal/platform/middleware"
	requestutil "github.com/tidol/bookly/internal/platform/request"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/pkg/convert"
	"github.com/tidol/bookly/pkg/pagination"
)

// Handler implements catalogue-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalogue routes onto the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public discovery
	router.Get("/", handler.listBooks)
	router.Get("/recent-updates", handler.recentUpdates)
	router.Get("/{id}", handler.getBook)

	// Authoring
	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Post("/", handler.createBook)
		authedRoute.Patch("/{id}", handler.updateBook)
		authedRoute.Delete("/{id}", handler.deleteBook)
	})

	// Full replacement is deliberately unsupported; partial updates only.
	router.Put("/{id}", handler.putNotAllowed)
}

/*
ListBooks returns a paginated slice of the catalogue.

GET /api/v1/books?q=...&genre=...&author=...

Response:
  - 200: Paginated []Book
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:     request.URL.Query().Get("q"),
		GenreSlug: request.URL.Query().Get("genre"),
		AuthorID:  request.URL.Query().Get("author"),
	}

	books, total, err := handler.service.ListBooks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
RecentUpdates returns the front-page feed of freshly updated books.

GET /api/v1/books/recent-updates?limit=

Response:
  - 200: []Update (book + latest chapter), newest first, deduplicated
*/
func (handler *Handler) recentUpdates(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get("limit"), constants.RecentUpdatesCap)

	updates, err := handler.service.RecentUpdates(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updates)
}

/*
GetBook resolves a single book by UUID or slug.

GET /api/v1/books/{id}

Response:
  - 200: Book
  - 404: ErrNotFound
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.ID(request, "id")

	book, err := handler.service.GetBook(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

/*
CreateBook publishes a new book under the caller's author profile.

POST /api/v1/books

Response:
  - 201: Book
  - 403: ErrForbidden: Caller has no author profile
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Book
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBook(request.Context(), userID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

/*
UpdateBook applies a partial modification to a book.

PATCH /api/v1/books/{id}

Response:
  - 200: Book
  - 403: ErrForbidden: Caller is not the owning author
  - 404: ErrNotFound
*/
func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.UpdateBook(request.Context(), claims, bookID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

/*
DeleteBook removes a book and everything beneath it.

DELETE /api/v1/books/{id}

Response:
  - 204: No Content
  - 403: ErrForbidden: Caller is neither owner nor moderator
  - 404: ErrNotFound
*/
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	if err := handler.service.DeleteBook(request.Context(), claims, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) putNotAllowed(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.MethodNotAllowed("Use PATCH for partial updates"))
}
