package schema

// BooklyHistoryTable represents the 'bookly.history' table
type BooklyHistoryTable struct {
	Table     string
	ID        string
	UserID    string
	ChapterID string
	ViewedAt  string
}

// BooklyHistory is the schema definition for bookly.history
var BooklyHistory = BooklyHistoryTable{
	Table:     "bookly.history",
	ID:        "id",
	UserID:    "userid",
	ChapterID: "chapterid",
	ViewedAt:  "viewedat",
}

func (t BooklyHistoryTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ChapterID, t.ViewedAt}
}
