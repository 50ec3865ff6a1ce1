package schema

// BooklyBookmarkTable represents the 'bookly.bookmark' table
type BooklyBookmarkTable struct {
	Table     string
	ID        string
	UserID    string
	ChapterID string
	Page      string
	CreatedAt string
}

// BooklyBookmark is the schema definition for bookly.bookmark
var BooklyBookmark = BooklyBookmarkTable{
	Table:     "bookly.bookmark",
	ID:        "id",
	UserID:    "userid",
	ChapterID: "chapterid",
	Page:      "page",
	CreatedAt: "createdat",
}

func (t BooklyBookmarkTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ChapterID, t.Page, t.CreatedAt}
}
