package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/api/metrics"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// Auth is the access guard: it extracts the bearer token, verifies it,
// and re-resolves the user record from the decoded email so that tokens
// issued to since-deleted users stop working immediately. The resulting
// principal is injected into the echo context as "email" and "role".
//
// The role comes from the fresh user record, not the token, so role
// changes take effect without waiting for token expiry.
func Auth(codec ports.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return authWith(codec, users, false)
}

// OptionalAuth resolves a principal when an Authorization header is
// present and leaves the request anonymous otherwise. A header that is
// present but invalid is still rejected: silently downgrading a bad
// credential to anonymous would mask token problems from callers.
// Used on routes that are public but behave differently for
// authenticated principals, such as registration.
func OptionalAuth(codec ports.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return authWith(codec, users, true)
}

func authWith(codec ports.TokenCodec, users ports.UserRepository, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if optional {
					return next(c)
				}
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			p, err := codec.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), p.Email)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("unknown_principal").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("email", user.Email)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
