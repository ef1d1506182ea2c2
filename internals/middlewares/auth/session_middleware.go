// internals/middlewares/auth/session_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helperAuth "undanganku_backend/internals/helpers/auth"
)

// SessionMiddleware jalan di semua request:
//  1. cookie session valid -> perpanjang expiry (sliding) + simpan identitas di Locals
//  2. /dashboard* tanpa session -> redirect ke /login
//  3. /login dengan session -> redirect ke /dashboard
//
// Dievaluasi per request, stateless; tidak ada session store di server selain
// payload + signature cookie itu sendiri.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helperAuth.GetSession(c)
		hasSession := err == nil

		if hasSession {
			// Refresh expiry setiap aktivitas
			token, exp, buildErr := helperAuth.BuildSessionToken(user, time.Now().UTC())
			if buildErr != nil {
				log.Printf("[ERROR] refresh session gagal: %v", buildErr)
			} else {
				helperAuth.SetSessionCookie(c, token, exp)
			}

			c.Locals("session_user_id", user.ID.String())
			c.Locals("session_user_email", user.Email)
			c.Locals("session_user_name", user.Name)
		}

		path := c.Path()
		if strings.HasPrefix(path, "/dashboard") && !hasSession {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if path == "/login" && hasSession {
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}

		return c.Next()
	}
}

// RequireSession memagari route API yang hanya boleh diakses admin.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, _ := c.Locals("session_user_id").(string); id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
