// Copyright (c) 2026 Bookly. All rights reserved.

package api

import (
	"net/http"

	"github.com/tidol/bookly/internal/core/author"
	"github.com/tidol/bookly/internal/core/book"
	"github.com/tidol/bookly/internal/platform/apperr"
	"github.com/tidol/bookly/internal/platform/respond"
	"github.com/tidol/bookly/internal/platform/validate"
	"github.com/tidol/bookly/pkg/pagination"
)

// searchResult is the combined payload of a cross-domain lookup.
type searchResult struct {
	Books   []*book.Book     `json:"books"`
	Authors []*author.Author `json:"authors"`
}

// NewSearchHandler builds the combined books+authors substring search.
//
// GET /api/v1/search?q=
//
// Response:
//   - 200: searchResult with at least one hit
//   - 400: ErrValidation: Missing query
//   - 404: ErrNotFound: Neither domain matched
func NewSearchHandler(books *book.Service, authors *author.Service) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query().Get("q")
		if query == "" {
			respond.Error(writer, request, validate.RequiredError("q", "Search query is required"))
			return
		}

		paginationParams := pagination.FromRequest(request)

		matchedBooks, _, err := books.ListBooks(request.Context(), book.Filter{Query: query}, paginationParams.Limit, paginationParams.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		matchedAuthors, _, err := authors.ListAuthors(request.Context(), author.Filter{Query: query}, paginationParams.Limit, paginationParams.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if len(matchedBooks) == 0 && len(matchedAuthors) == 0 {
			respond.Error(writer, request, apperr.NotFound("Book or author matching the query"))
			return
		}

		respond.OK(writer, searchResult{Books: matchedBooks, Authors: matchedAuthors})
	}
}
