package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

type stubAuthenticator struct {
	principal domain.Principal
	err       error
}

func (s *stubAuthenticator) Authenticate(token string) (domain.Principal, error) {
	if s.err != nil {
		return domain.Principal{}, s.err
	}
	return s.principal, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubAuthenticator{principal: domain.Principal{UserID: "alice"}})
	handler := mw(func(c echo.Context) error {
		called = true
		principal, ok := c.Get(PrincipalKey).(domain.Principal)
		if !ok || principal.UserID != "alice" {
			t.Fatalf("principal not injected: %v", c.Get(PrincipalKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthenticator{principal: domain.Principal{UserID: "alice"}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthenticator{principal: domain.Principal{UserID: "alice"}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer expired-or-forged")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthenticator{err: domain.ErrUnauthenticated})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
