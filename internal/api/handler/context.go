package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classhub/classhub-api/internal/api/middleware"
	"github.com/classhub/classhub-api/internal/core/domain"
)

// ctxIdentity recovers the identity injected by the Auth middleware and
// fast-fails before any service call: a non-zero user id proves the
// middleware ran. Routes behind Auth should never trip this; it guards
// against a route wired without it.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get(middleware.ContextUserID).(int64)
	role, _ := c.Get(middleware.ContextRole).(string)
	if id == 0 || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusForbidden, "token is invalid or expired")
	}
	return domain.Identity{ID: id, Role: role}, nil
}
