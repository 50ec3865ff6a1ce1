package schema

// BooklyCommentTable represents the 'bookly.comment' table
type BooklyCommentTable struct {
	Table     string
	ID        string
	UserID    string
	ChapterID string
	ParentID  string
	Body      string
	CreatedAt string
	UpdatedAt string
}

// BooklyComment is the schema definition for bookly.comment
var BooklyComment = BooklyCommentTable{
	Table:     "bookly.comment",
	ID:        "id",
	UserID:    "userid",
	ChapterID: "chapterid",
	ParentID:  "parentid",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t BooklyCommentTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ChapterID, t.ParentID, t.Body, t.CreatedAt, t.UpdatedAt}
}
