package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"undanganku_backend/internals/features/users/auth/service"
	middlewares "undanganku_backend/internals/middlewares"
	authMiddleware "undanganku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/auth")

	api.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return service.Login(db, c)
	})
	api.Post("/logout", func(c *fiber.Ctx) error {
		return service.Logout(c)
	})
	api.Get("/me", func(c *fiber.Ctx) error {
		return service.Me(c)
	})
	api.Post("/update", authMiddleware.RequireSession(), func(c *fiber.Ctx) error {
		return service.UpdateCredentials(db, c)
	})
}
