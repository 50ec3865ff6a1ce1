// Copyright (c) 2026 Bookly. All rights reserved.

package book

import "context"

// Repository defines the data access contract for the book catalogue.
type Repository interface {

	/*
		List returns a filtered, paginated slice of the catalogue.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit: int
		  - offset: int

		Returns:
		  - []*Book: Matching books with genres and view counts hydrated
		  - int: Total matching count
		  - error: Retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error)

	/*
		FindByID returns the book with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Book: Hydrated entity including owner account ID
		  - error: Retrieval failures
	*/
	FindByID(context context.Context, id string) (*Book, error)

	/*
		FindBySlug returns the book with the given URL slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Book: Hydrated entity including owner account ID
		  - error: Retrieval failures
	*/
	FindBySlug(context context.Context, slug string) (*Book, error)

	/*
		Create persists a new book and its genre associations atomically.

		Parameters:
		  - context: context.Context
		  - book: *Book

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, book *Book) error

	/*
		Update persists metadata changes and rewrites genre associations
		when GenreIDs is non-nil.

		Parameters:
		  - context: context.Context
		  - book: *Book

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, book *Book) error

	/*
		Delete permanently removes a book. Chapters and dependent rows are
		removed by the storage cascade.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, id string) error

	/*
		ListRecentlyUpdated returns books ordered by their latest chapter
		update, each paired with that chapter. A book appears at most once.

		Parameters:
		  - context: context.Context
		  - limit: int

		Returns:
		  - []*Update: Feed entries, newest first
		  - error: Retrieval failures
	*/
	ListRecentlyUpdated(context context.Context, limit int) ([]*Update, error)
}
