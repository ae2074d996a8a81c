package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Presence of both claims proves the middleware ran; their absence on a
// guarded route means the request never passed authentication.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)
	if email == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Principal{Email: email, Role: role}, nil
}
