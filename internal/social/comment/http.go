// Copyright (c) 2026 Bookly. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tidol/bookly/internal/platform/ctxutil"
	"github.com/tidol/bookly/internal/platform/middleware"
	requestutil "github.com/tidol/bookly/internal/platform/request"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/pkg/pagination"
)

// Handler implements comment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the comment routes addressed by comment ID.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Delete("/{id}", handler.deleteComment)
	})
}

// RegisterChapterRoutes mounts the routes nested under a chapter:
// the discussion listing and comment creation.
func (handler *Handler) RegisterChapterRoutes(router chi.Router) {
	router.Get("/{id}/comments", handler.listComments)

	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)

		authedRoute.Post("/{id}/comments", handler.createComment)
	})
}

/*
ListComments returns a chapter's discussion, oldest first.

GET /api/v1/chapters/{id}/comments

Response:
  - 200: Paginated []Comment
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")
	paginationParams := pagination.FromRequest(request)

	comments, total, err := handler.service.ListComments(request.Context(), chapterID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
CreateComment posts a comment under a chapter, optionally as a reply.

POST /api/v1/chapters/{id}/comments

Response:
  - 201: Comment
  - 400: ErrValidation: Reply nesting beyond one level
  - 404: ErrNotFound: Unknown chapter or parent comment
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Comment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateComment(request.Context(), userID, chapterID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

/*
DeleteComment removes a comment and its replies.

DELETE /api/v1/comments/{id}

Response:
  - 204: No Content
  - 403: ErrForbidden: Caller is neither commenter nor moderator
  - 404: ErrNotFound
*/
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID := requestutil.ID(request, "id")
	claims := ctxutil.GetAuthUser(request.Context())

	if err := handler.service.DeleteComment(request.Context(), claims, commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
