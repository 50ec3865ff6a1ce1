// Copyright (c) 2026 Bookly. All rights reserved.

package comment

import "context"

// Repository defines the data access contract for comments.
type Repository interface {

	/*
		ListByChapter returns a chapter's comments, oldest first so threads
		read top-down, with commenter usernames joined in.

		Parameters:
		  - context: context.Context
		  - chapterID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Comment: Hydrated discussion entries
		  - int: Total comment count for the chapter
		  - error: Retrieval failures
	*/
	ListByChapter(context context.Context, chapterID string, limit, offset int) ([]*Comment, int, error)

	/*
		FindByID returns a single comment.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Comment: The stored record
		  - error: Retrieval failures
	*/
	FindByID(context context.Context, id string) (*Comment, error)

	/*
		Create persists a new comment.

		Parameters:
		  - context: context.Context
		  - comment: *Comment

		Returns:
		  - error: NotFound when the chapter or parent row is gone, or
		    persistence failures
	*/
	Create(context context.Context, comment *Comment) error

	/*
		Delete removes a comment; replies beneath it cascade.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound when the row is gone, or deletion failures
	*/
	Delete(context context.Context, id string) error
}
