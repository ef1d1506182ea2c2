package route

import (
	"github.com/gofiber/fiber/v2"

	"undanganku_backend/internals/features/media/controller"
	"undanganku_backend/internals/helpers/oss"
	middlewares "undanganku_backend/internals/middlewares"
	authMiddleware "undanganku_backend/internals/middlewares/auth"
)

func MediaRoutes(app *fiber.App, ossService *oss.OSSService) {
	ctrl := controller.NewUploadController(ossService)

	app.Post("/api/upload",
		authMiddleware.RequireSession(),
		middlewares.UploadRateLimiter(),
		ctrl.UploadImage,
	)
}
