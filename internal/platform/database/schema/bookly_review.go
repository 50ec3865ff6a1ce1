package schema

// BooklyReviewTable represents the 'bookly.review' table
type BooklyReviewTable struct {
	Table     string
	ID        string
	UserID    string
	BookID    string
	Score     string
	Body      string
	CreatedAt string
	UpdatedAt string
}

// BooklyReview is the schema definition for bookly.review
var BooklyReview = BooklyReviewTable{
	Table:     "bookly.review",
	ID:        "id",
	UserID:    "userid",
	BookID:    "bookid",
	Score:     "score",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t BooklyReviewTable) Columns() []string {
	return []string{t.ID, t.UserID, t.BookID, t.Score, t.Body, t.CreatedAt, t.UpdatedAt}
}
