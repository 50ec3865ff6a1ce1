package genre

import "time"

// Genre is a browsable category label. Books attach to genres through a
// junction maintained by the catalogue.
type Genre struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldName = "name"
)
