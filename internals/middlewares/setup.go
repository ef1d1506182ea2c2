package middlewares

import (
	"github.com/gofiber/fiber/v2"

	authMiddleware "undanganku_backend/internals/middlewares/auth"
	loggerMiddleware "undanganku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan:
// recovery → logger → cors → global limiter → session (refresh + redirect)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(authMiddleware.SessionMiddleware())
}
