// Copyright (c) 2026 Bookly. All rights reserved.

package review

import "context"

// Repository defines the data access contract for reviews.
type Repository interface {

	/*
		ListByBook returns a book's reviews, newest first, with reviewer
		usernames joined in.

		Parameters:
		  - context: context.Context
		  - bookID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Review: Hydrated reviews
		  - int: Total review count for the book
		  - error: Retrieval failures
	*/
	ListByBook(context context.Context, bookID string, limit, offset int) ([]*Review, int, error)

	/*
		FindByID returns a single review.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Review: The stored record
		  - error: Retrieval failures
	*/
	FindByID(context context.Context, id string) (*Review, error)

	/*
		Create persists a new review.

		Parameters:
		  - context: context.Context
		  - review: *Review

		Returns:
		  - error: NotFound when the book is gone; Conflict when the user
		    already reviewed it; persistence failures
	*/
	Create(context context.Context, review *Review) error

	/*
		Delete removes a review.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound when the row is gone, or deletion failures
	*/
	Delete(context context.Context, id string) error
}
