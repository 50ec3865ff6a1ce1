// Copyright (c) 2026 Bookly. All rights reserved.

package history

import "context"

// Repository defines the data access contract for reading history.
type Repository interface {

	/*
		Upsert records that a user viewed a chapter. Executed as one atomic
		statement: a first view inserts the row, a repeat view only advances
		its timestamp.

		Parameters:
		  - context: context.Context
		  - id: string (candidate row ID, ignored when the pair exists)
		  - userID: string
		  - chapterID: string

		Returns:
		  - error: NotFound when the chapter is gone, or persistence failures
	*/
	Upsert(context context.Context, id, userID, chapterID string) error

	/*
		ListByUser returns a user's history, most recent first, with chapter
		and book titles joined in.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Entry: Hydrated history records
		  - int: Total history size for the user
		  - error: Retrieval failures
	*/
	ListByUser(context context.Context, userID string, limit, offset int) ([]*Entry, int, error)

	/*
		ClearByUser deletes every history row of a user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Deletion failures
	*/
	ClearByUser(context context.Context, userID string) error
}
