package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwellhq/blog-api/internal/core/domain"
	"github.com/inkwellhq/blog-api/internal/infrastructure/security"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := security.NewJWTTokenService("test-secret", 0)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected created user with id, got %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash must not leave the auth service")
	}

	stored := repo.users["a@x.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "pw123" {
		t.Fatalf("expected stored password to be hashed, got %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "a@x.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	first, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "Impostor", "a@x.com", "other"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The first registration is unaffected.
	stored := repo.users["a@x.com"]
	if stored.ID != first.ID || stored.Name != "Alice" {
		t.Fatalf("first user was modified: %+v", stored)
	}
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	principal, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if principal.UserID != created.ID {
		t.Fatalf("expected principal %q, got %q", created.ID, principal.UserID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	// Absent users fail with the same error as wrong passwords.
	if _, err := svc.Login(context.Background(), "ghost@x.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Authenticate(token); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("token %q: expected ErrUnauthenticated, got %v", token, err)
		}
	}
}

func TestAuthService_Authenticate_ForeignToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// A token signed with a different key is rejected as unauthenticated,
	// with no attack-relevant detail.
	foreign := security.NewJWTTokenService("other-secret", 0)
	token, err := foreign.Issue("user-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Authenticate(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
