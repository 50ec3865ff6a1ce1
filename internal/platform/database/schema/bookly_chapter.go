package schema

// BooklyChapterTable represents the 'bookly.chapter' table
type BooklyChapterTable struct {
	Table     string
	ID        string
	BookID    string
	Number    string
	Title     string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// BooklyChapter is the schema definition for bookly.chapter
var BooklyChapter = BooklyChapterTable{
	Table:     "bookly.chapter",
	ID:        "id",
	BookID:    "bookid",
	Number:    "number",
	Title:     "title",
	Content:   "content",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t BooklyChapterTable) Columns() []string {
	return []string{t.ID, t.BookID, t.Number, t.Title, t.Content, t.CreatedAt, t.UpdatedAt}
}
