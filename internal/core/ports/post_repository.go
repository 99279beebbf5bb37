package ports

import (
	"context"
	"time"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Single-record
// operations are atomic at the repository boundary.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindAll(ctx context.Context) ([]*domain.Post, error)
	// FindByID returns domain.ErrPostNotFound when no post has the given id.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// UpdateContent replaces the content and updated_at of an existing post,
	// leaving every other field untouched. Returns the updated post or
	// domain.ErrPostNotFound.
	UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) (*domain.Post, error)
	// Delete removes a post and reports whether a record existed.
	Delete(ctx context.Context, id string) (bool, error)
}
