package handlers

import (
	"errors"
	"time"

	"membergate/internal/log"
	"membergate/internal/services"
	"membergate/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", nil)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, okName := validate.Name(c.FormValue("name"))
	email, okEmail := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	if !okName || !okEmail || !validate.Password(pass) {
		log.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "bad_format"})
		setFlash(c, "Please fill in a valid name, email and password.")
		return c.Redirect("/register")
	}

	u, err := h.Auth.Register(sid, email, pass, name)
	if errors.Is(err, services.ErrDuplicateEmail) {
		log.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "duplicate"})
		setFlash(c, "Email already exists.")
		return c.Redirect("/register")
	}
	if err != nil {
		return err
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	// The new account is already bound to the session; show the member
	// page directly instead of bouncing through the login form.
	c.Locals("user", u)
	return render(c, "secrets", fiber.Map{"Name": u.Name})
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")

	_, err := h.Auth.Login(sid, email, pass)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "unknown_email"})
		setFlash(c, "That email does not exist, please try again.")
		return c.Redirect("/login")
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password"})
		setFlash(c, "Password is incorrect, please try again.")
		return c.Redirect("/login")
	case err != nil:
		return err
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/secrets")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid != "" {
		if err := h.Auth.Logout(sid); err != nil {
			return err
		}
	}
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
