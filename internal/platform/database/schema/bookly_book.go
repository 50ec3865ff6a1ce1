package schema

// BooklyBookTable represents the 'bookly.book' table
type BooklyBookTable struct {
	Table       string
	ID          string
	AuthorID    string
	Title       string
	Slug        string
	Description string
	CoverURL    string
	CreatedAt   string
	UpdatedAt   string
}

// BooklyBook is the schema definition for bookly.book
var BooklyBook = BooklyBookTable{
	Table:       "bookly.book",
	ID:          "id",
	AuthorID:    "authorid",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	CoverURL:    "coverurl",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t BooklyBookTable) Columns() []string {
	return []string{t.ID, t.AuthorID, t.Title, t.Slug, t.Description, t.CoverURL, t.CreatedAt, t.UpdatedAt}
}
