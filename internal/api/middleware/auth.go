package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkwellhq/blog-api/internal/api/metrics"
	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// PrincipalKey is the echo context key holding the authenticated principal.
const PrincipalKey = "principal"

// Authenticator verifies a bearer token and returns the principal it was
// issued to.
type Authenticator interface {
	Authenticate(token string) (domain.Principal, error)
}

// Auth verifies the bearer token and injects the principal into the context.
// Requests failing verification never reach the handler.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := auth.Authenticate(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
