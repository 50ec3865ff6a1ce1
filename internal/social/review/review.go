// Copyright (c) 2026 Bookly. All rights reserved.

/*
Package review implements scored book reviews.

Each reader may review a book once, with a score from one to five and an
optional prose body.
*/
package review

import "time"

// Review is one reader's verdict on a book.
type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	BookID   string `json:"book_id"`

	// Score ranges from 1 (worst) to 5 (best).
	Score int    `json:"score"`
	Body  string `json:"body,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy implements [sec.Owned]; the reviewer controls the review.
func (r *Review) OwnedBy() string { return r.UserID }

// Global field names for validation
const (
	FieldScore = "score"
	FieldBody  = "body"
)
