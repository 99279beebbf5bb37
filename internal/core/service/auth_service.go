package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwellhq/blog-api/internal/core/domain"
	"github.com/inkwellhq/blog-api/internal/core/ports"
)

// AuthService implements registration, login, and token authentication on
// top of interface-typed collaborators.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger

	// dummyHash is verified against on the unknown-email login path so that
	// absent accounts cost roughly the same as a wrong password.
	dummyHash string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	dummy, err := hasher.Hash("login-timing-placeholder")
	if err != nil {
		log.Warn().Err(err).Msg("could not precompute dummy hash, enumeration padding disabled")
		dummy = ""
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		log:       log,
		dummyHash: dummy,
	}
}

// Register hashes the password and persists a new user. The email must not
// already be registered; the repository's unique index is the backstop for
// concurrent registrations racing past the lookup.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error().Err(err).Msg("password hashing failed")
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	// The hash stays behind the credential-store boundary.
	created.PasswordHash = ""
	return created, nil
}

// Login verifies credentials and mints a session token. A missing user and a
// password mismatch produce the same error so callers cannot enumerate
// registered emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if s.dummyHash != "" {
				s.hasher.Verify(password, s.dummyHash)
			}
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug().Str("user_id", user.ID).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, time.Now().UTC())
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, nil
}

// Authenticate verifies a session token. Signature, structure, and expiry
// failures all collapse to ErrUnauthenticated so callers cannot distinguish
// attack-relevant detail.
func (s *AuthService) Authenticate(token string) (domain.Principal, error) {
	principal, err := s.tokens.Verify(token, time.Now().UTC())
	if err != nil {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return principal, nil
}
