// Copyright (c) 2026 Bookly. All rights reserved.

package follow

import "context"

// Repository defines the data access contract for follows.
type Repository interface {

	/*
		Create persists a new follow.

		Parameters:
		  - context: context.Context
		  - id: string
		  - userID: string
		  - bookID: string

		Returns:
		  - error: NotFound when the book is gone; Conflict when the user
		    already follows it; persistence failures
	*/
	Create(context context.Context, id, userID, bookID string) error

	/*
		FindByUserAndBook returns the hydrated follow a user holds on a
		book, including the book's latest chapter.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - bookID: string

		Returns:
		  - *Follow: The hydrated subscription
		  - error: Retrieval failures
	*/
	FindByUserAndBook(context context.Context, userID, bookID string) (*Follow, error)

	/*
		ListByUser returns a user's follows, newest first, each hydrated
		with the book's latest chapter.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Follow: Hydrated subscriptions
		  - int: Total follow count for the user
		  - error: Retrieval failures
	*/
	ListByUser(context context.Context, userID string, limit, offset int) ([]*Follow, int, error)

	/*
		Delete removes a user's follow on a book.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - bookID: string

		Returns:
		  - error: NotFound when no such follow exists, or deletion failures
	*/
	Delete(context context.Context, userID, bookID string) error
}
