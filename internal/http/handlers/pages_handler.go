package handlers

import (
	"path/filepath"

	"membergate/internal/config"
	"membergate/internal/domain"

	"github.com/gofiber/fiber/v2"
)

type PagesHandler struct {
	Cfg config.Config
}

func (h *PagesHandler) Home(c *fiber.Ctx) error {
	_, loggedIn := c.Locals("user").(*domain.User)
	return render(c, "index", fiber.Map{"LoggedIn": loggedIn})
}

// Secrets is only reachable through RequireUser, so the user local is
// always set.
func (h *PagesHandler) Secrets(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	return render(c, "secrets", fiber.Map{"Name": u.Name})
}

// Download streams the one gated file. The path is fixed at wiring time,
// nothing client-controlled reaches the filesystem.
func (h *PagesHandler) Download(c *fiber.Ctx) error {
	return c.Download(filepath.Join(h.Cfg.FilesDir, "cheat_sheet.pdf"))
}
