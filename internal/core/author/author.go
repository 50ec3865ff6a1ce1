package author

import "time"

// Author represents the public writing profile of a platform user.
// A user holds at most one profile; books are attributed to the profile,
// never to the account directly.
type Author struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy implements [sec.Owned]; the owning account controls the profile.
func (a *Author) OwnedBy() string { return a.UserID }

// Filter holds the parameters for a paginated author search.
type Filter struct {
	Query string // Substring search against name
}

// Global field names for validation
const (
	FieldName = "name"
	FieldBio  = "bio"
)
