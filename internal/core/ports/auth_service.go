package ports

import (
	"context"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// AuthService orchestrates registration, credential login, and request
// authentication.
type AuthService interface {
	// Register creates a new user. The returned User never carries the
	// password hash.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and mints a session token. Absent users and
	// wrong passwords are indistinguishable: both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate verifies a session token and returns the principal it was
	// issued to. Every token failure collapses to domain.ErrUnauthenticated.
	Authenticate(token string) (domain.Principal, error)
}
