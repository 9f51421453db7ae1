package middleware

import (
	"career-bridge/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// RequireRole gates a route group to the given roles. It must run after the
// auth middleware has populated the role local.
func RequireRole(roles ...user.Role) fiber.Handler {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		raw, ok := c.Locals(CtxRoleKey).(string)
		if !ok || raw == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if _, ok := allowed[user.Role(raw)]; !ok {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}
