package schema

// BooklyBookGenreTable represents the 'bookly.bookgenre' junction table
type BooklyBookGenreTable struct {
	Table   string
	BookID  string
	GenreID string
}

// BooklyBookGenre is the schema definition for bookly.bookgenre
var BooklyBookGenre = BooklyBookGenreTable{
	Table:   "bookly.bookgenre",
	BookID:  "bookid",
	GenreID: "genreid",
}

func (t BooklyBookGenreTable) Columns() []string {
	return []string{t.BookID, t.GenreID}
}
