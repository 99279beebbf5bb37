package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(token string) (domain.Principal, error) {
	return domain.Principal{}, domain.ErrUnauthenticated
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "a@x.com" || password != "pw1234" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "u1", Name: name, Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Alice","email":"a@x.com","password":"pw1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u1" || user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Bob","email":"b@x.com","password":"pw1234"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, body := range []string{"not-json", `{"name":"Bob"}`, `{"name":"Bob","email":"nope","password":"pw1234"}`} {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = handler.Register(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "a@x.com" || password != "pw123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"pw123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
