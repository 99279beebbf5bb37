package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwellhq/blog-api/internal/api/middleware"
	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. A
// missing or empty principal means the middleware did not run or the token
// carried no subject; either way the request is unauthenticated.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(domain.Principal)
	if principal.UserID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
