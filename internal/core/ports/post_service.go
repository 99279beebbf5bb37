package ports

import (
	"context"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// PostService defines use-case operations for posts. Reads are public;
// mutations require a principal and are restricted to the post's author.
type PostService interface {
	Create(ctx context.Context, principal domain.Principal, content string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, principal domain.Principal, id, content string) (*domain.Post, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}
