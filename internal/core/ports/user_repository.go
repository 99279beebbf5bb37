package ports

import (
	"context"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// UserRepository defines persistence for user credentials. Implementations
// must enforce email uniqueness and return domain.ErrDuplicateEmail on
// violation as a storage-layer backstop.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
