package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("access forbidden")
var ErrEmptyContent = errors.New("content is required")

// Post is a publicly readable blog entry. AuthorID is set once at creation
// and never changed by updates.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
