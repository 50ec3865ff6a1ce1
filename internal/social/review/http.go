// Copyright (c) 2026 Bookly. All rights reserved.

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidol/bookly/internal/platform/ctxutil"
	"github.com/tidol/bookly/internal/platform/middleware"
	requestutil "github.com/tidol/bookly/internal/platform/request"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/pkg/pagination"
)

// Handler implements review HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the review routes addressed by review ID.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Delete("/{id}", handler.deleteReview)
	})
}

// RegisterBookRoutes mounts the routes nested under a book:
// the review listing and review creation.
func (handler *Handler) RegisterBookRoutes(router chi.Router) {
	router.Get("/{id}/reviews", handler.listReviews)

	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Post("/{id}/reviews", handler.createReview)
	})
}

/*
ListReviews returns a book's reviews, newest first.

GET /api/v1/books/{id}/reviews

Response:
  - 200: Paginated []Review
*/
func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")
	paginationParams := pagination.FromRequest(request)

	reviews, total, err := handler.service.ListReviews(request.Context(), bookID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
CreateReview posts the caller's verdict on a book.

POST /api/v1/books/{id}/reviews

Response:
  - 201: Review
  - 400: ErrValidation: Score outside 1..5
  - 404: ErrNotFound: Unknown book
  - 409: ErrConflict: Caller already reviewed this book
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Review
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateReview(request.Context(), userID, bookID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

/*
DeleteReview withdraws one of the caller's reviews.

DELETE /api/v1/reviews/{id}

Response:
  - 204: No Content
  - 403: ErrForbidden: Review belongs to someone else
  - 404: ErrNotFound
*/
func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	if err := handler.service.DeleteReview(request.Context(), claims, reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
