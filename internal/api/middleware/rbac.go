package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/classhub/classhub-api/internal/core/domain"
)

// RBAC enforces role-based access control on routes behind Auth. With no
// arguments any authenticated identity passes; otherwise the caller's
// role must be in the allowed set. Rejections surface as
// domain.ErrRoleNotPermitted, which the central error handler renders
// as 401 "unauthorized role".
//
// The role was stamped into the token at login, so a role change by an
// admin takes effect only once the holder re-authenticates.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role == "" {
				return domain.ErrRoleNotPermitted
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					return domain.ErrRoleNotPermitted
				}
			}
			return next(c)
		}
	}
}
