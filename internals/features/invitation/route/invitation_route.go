package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"undanganku_backend/internals/features/invitation/controller"
	authMiddleware "undanganku_backend/internals/middlewares/auth"
)

// InvitationRoutes: baca publik, tulis dipagari session admin.
func InvitationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewInvitationController(db)

	api := app.Group("/api/invitation")
	api.Get("/", ctrl.GetInvitation)
	api.Put("/", authMiddleware.RequireSession(), ctrl.UpdateInvitation)
	api.Post("/comment", ctrl.SubmitComment)
}
