package domain

import (
	"errors"
	"time"
)

var ErrSnippetNotFound = errors.New("snippet not found")
var ErrForbidden = errors.New("access forbidden")

// Snippet is a piece of user-authored content. AuthorID is immutable:
// ownership never changes hands after creation.
type Snippet struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanModify reports whether identity may mutate or delete the snippet:
// the author always can, and so can an admin.
func (s *Snippet) CanModify(identity Identity) bool {
	return s.AuthorID == identity.ID || identity.IsAdmin()
}
