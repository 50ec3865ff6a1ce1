// Copyright (c) 2026 Bookly. All rights reserved.

package bookmark

import "context"

// Repository defines the data access contract for bookmarks.
type Repository interface {

	/*
		Create persists a new bookmark.

		Parameters:
		  - context: context.Context
		  - bookmark: *Bookmark

		Returns:
		  - error: NotFound when the chapter is gone; Conflict when the
		    (user, chapter, page) triple already exists; persistence failures
	*/
	Create(context context.Context, bookmark *Bookmark) error

	/*
		FindByID returns a single bookmark regardless of owner; the caller
		performs the ownership check.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Bookmark: The stored record
		  - error: Retrieval failures
	*/
	FindByID(context context.Context, id string) (*Bookmark, error)

	/*
		ListByUser returns a user's bookmarks, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Bookmark: The user's saved positions
		  - int: Total bookmark count for the user
		  - error: Retrieval failures
	*/
	ListByUser(context context.Context, userID string, limit, offset int) ([]*Bookmark, int, error)

	/*
		Delete removes a bookmark by ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound when the row is gone, or deletion failures
	*/
	Delete(context context.Context, id string) error
}
