package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/cybernetic-labs/cyberauth"
)

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register handles POST /register. Domain failures (duplicate, weak
// password) come back as 200 with Success=false, matching the result-object
// contract the facade gives every caller; 500 is reserved for storage
// failures.
func (a *Adapter) register(c fiber.Ctx) error {
	var input registerInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.Register(input.Username, input.Email, input.Password)
	if err != nil {
		return handleStorageError(c, err)
	}

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(result)
}

// login handles POST /login
func (a *Adapter) login(c fiber.Ctx) error {
	var input loginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.Login(input.Username, input.Password)
	if err != nil {
		return handleStorageError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// logout handles POST /logout. No navigation happens here; the client
// redirects itself after the 200.
func (a *Adapter) logout(c fiber.Ctx) error {
	if err := a.auth.Logout(); err != nil {
		return handleStorageError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "logged out",
	})
}

// session handles GET /session
func (a *Adapter) session(c fiber.Ctx) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		return handleStorageError(c, err)
	}
	if user == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": cyberauth.ErrNoActiveSession.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(user)
}

// updateProfile handles PATCH /profile
func (a *Adapter) updateProfile(c fiber.Ctx) error {
	var update cyberauth.ProfileUpdate
	if err := c.Bind().Body(&update); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.UpdateProfile(update)
	if err != nil {
		return handleStorageError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// users handles GET /users. Administrative dump; the facade enforces no
// authorization beyond the active-session middleware.
func (a *Adapter) users(c fiber.Ctx) error {
	all, err := a.auth.AllUsers()
	if err != nil {
		return handleStorageError(c, err)
	}

	return c.Status(http.StatusOK).JSON(all)
}

// handleStorageError maps backend failures to a 500 response
func handleStorageError(c fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
