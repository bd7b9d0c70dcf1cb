package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/cybernetic-labs/cyberauth"
)

// requireSession rejects the request with 401 unless a session is active.
// The current user is stored in the context for downstream handlers.
func (a *Adapter) requireSession(c fiber.Ctx) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		return handleStorageError(c, err)
	}
	if user == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": cyberauth.ErrNoActiveSession.Error(),
		})
	}

	c.Locals("user", user)

	return c.Next()
}
