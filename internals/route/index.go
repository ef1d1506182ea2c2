// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invitationRoute "undanganku_backend/internals/features/invitation/route"
	mediaRoute "undanganku_backend/internals/features/media/route"
	authRoute "undanganku_backend/internals/features/users/auth/route"
	"undanganku_backend/internals/helpers/oss"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, ossService *oss.OSSService) {
	startTime = time.Now()

	BaseRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up InvitationRoutes...")
	invitationRoute.InvitationRoutes(app, db)

	log.Println("[INFO] Setting up MediaRoutes...")
	mediaRoute.MediaRoutes(app, ossService)
}
