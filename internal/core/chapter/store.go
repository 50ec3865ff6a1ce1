// Copyright (c) 2026 Bookly. All rights reserved.

package chapter

import "context"

// Repository defines the data access contract for chapters.
type Repository interface {

	/*
		ListByBook returns the chapter index of a book without content bodies.

		Parameters:
		  - context: context.Context
		  - bookID: string
		  - filter: Filter
		  - limit: int
		  - offset: int

		Returns:
		  - []*Chapter: Ordered chapter summaries
		  - int: Total chapter count for the book
		  - error: Retrieval failures
	*/
	ListByBook(context context.Context, bookID string, filter Filter, limit, offset int) ([]*Chapter, int, error)

	/*
		FindByID returns a full chapter including content, view count and
		the owning account.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Chapter: Hydrated entity
		  - error: Retrieval failures
	*/
	FindByID(context context.Context, id string) (*Chapter, error)

	/*
		Create persists a new chapter.

		Parameters:
		  - context: context.Context
		  - chapter: *Chapter

		Returns:
		  - error: Conflict on a duplicate (book, number) pair, or persistence failures
	*/
	Create(context context.Context, chapter *Chapter) error

	/*
		Update persists changes to number, title and content.

		Parameters:
		  - context: context.Context
		  - chapter: *Chapter

		Returns:
		  - error: Conflict on a duplicate (book, number) pair, or persistence failures
	*/
	Update(context context.Context, chapter *Chapter) error

	/*
		Delete permanently removes a chapter; history, bookmarks and
		comments beneath it cascade.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, id string) error
}
