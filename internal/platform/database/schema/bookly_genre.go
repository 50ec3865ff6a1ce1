package schema

// BooklyGenreTable represents the 'bookly.genre' table
type BooklyGenreTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// BooklyGenre is the schema definition for bookly.genre
var BooklyGenre = BooklyGenreTable{
	Table:     "bookly.genre",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t BooklyGenreTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt}
}
