package schema

// BooklyFollowTable represents the 'bookly.follow' table
type BooklyFollowTable struct {
	Table     string
	ID        string
	UserID    string
	BookID    string
	CreatedAt string
}

// BooklyFollow is the schema definition for bookly.follow
var BooklyFollow = BooklyFollowTable{
	Table:     "bookly.follow",
	ID:        "id",
	UserID:    "userid",
	BookID:    "bookid",
	CreatedAt: "createdat",
}

func (t BooklyFollowTable) Columns() []string {
	return []string{t.ID, t.UserID, t.BookID, t.CreatedAt}
}
