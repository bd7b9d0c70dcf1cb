package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cybernetic-labs/cyberauth"
)

const defaultBasePath = "/api/auth"

// Adapter binds the auth facade to a fiber app. It is presentation glue:
// every route is a thin translation between HTTP and one facade call.
type Adapter struct {
	app  *fiber.App
	auth *cyberauth.Auth
}

func New(app *fiber.App, auth *cyberauth.Auth) *Adapter {
	return &Adapter{app: app, auth: auth}
}

// RegisterRoutes mounts the facade under basePath (default /api/auth).
func (a *Adapter) RegisterRoutes(basePath string) error {
	if basePath == "" {
		basePath = defaultBasePath
	}

	api := a.app.Group(basePath)

	// Public routes
	api.Post("/register", a.register)
	api.Post("/login", a.login)
	api.Get("/session", a.session)

	// Protected routes
	api.Post("/logout", a.requireSession, a.logout)
	api.Patch("/profile", a.requireSession, a.updateProfile)
	api.Get("/users", a.requireSession, a.users)

	return nil
}
