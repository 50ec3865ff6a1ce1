package schema

// BooklyAuthorTable represents the 'bookly.author' table
type BooklyAuthorTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	Bio       string
	CreatedAt string
	UpdatedAt string
}

// BooklyAuthor is the schema definition for bookly.author
var BooklyAuthor = BooklyAuthorTable{
	Table:     "bookly.author",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	Bio:       "bio",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t BooklyAuthorTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.Bio, t.CreatedAt, t.UpdatedAt}
}
