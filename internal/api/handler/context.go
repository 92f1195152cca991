package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wastemap/collection-api/internal/api/middleware"
	"github.com/wastemap/collection-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call; its presence proves the middleware
// ran on this route.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
