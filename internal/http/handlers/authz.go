package handlers

import (
	applog "membergate/internal/log"
	"membergate/internal/services"

	"github.com/gofiber/fiber/v2"
)

const unauthorizedBody = "<h1>Unauthorized Action: Login Required</h1>"

// RequireUser gates a route on a resolved identity. Anonymous callers
// get a terminal 401 body, never a redirect; authenticated callers have
// their user record placed in Locals before the handler runs.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c.Cookies("sid"))
		if err != nil || u == nil {
			applog.Security(c, "access.denied", map[string]any{"path": c.Path()})
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusUnauthorized).SendString(unauthorizedBody)
		}
		c.Locals("user", u)
		return c.Next()
	}
}
