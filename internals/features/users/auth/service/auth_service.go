// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "undanganku_backend/internals/features/users/auth/helper"
	userModel "undanganku_backend/internals/features/users/user/model"
	helper "undanganku_backend/internals/helpers"
	helperAuth "undanganku_backend/internals/helpers/auth"
)

var ErrInvalidCredentials = errors.New("Invalid credentials")

// VerifyLogin memutuskan lolos/tidaknya login. User nil (email tidak
// terdaftar) dan password salah sengaja menghasilkan error yang sama persis
// supaya tidak ada sinyal enumerasi email keluar.
func VerifyLogin(user *userModel.UserModel, password string) error {
	if user == nil {
		return ErrInvalidCredentials
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ApplyCredentialUpdates menerapkan perubahan kredensial parsial: hanya field
// yang terisi yang mengubah user, password di-hash ulang sebelum disimpan.
// Field kosong dibiarkan apa adanya (nama saja tidak menyentuh email/hash).
func ApplyCredentialUpdates(user *userModel.UserModel, name, email, password string) error {
	if email != "" {
		user.Email = strings.TrimSpace(email)
	}
	if name != "" {
		user.Name = strings.TrimSpace(name)
	}
	if password != "" {
		hashed, err := authHelper.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}
	return nil
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	var found *userModel.UserModel
	var user userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
	} else {
		found = &user
	}

	if err := VerifyLogin(found, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := issueSession(c, user); err != nil {
		log.Printf("[ERROR] issue session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, fiber.Map{
		"success": true,
		"user":    fiber.Map{"email": user.Email, "name": user.Name},
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(c *fiber.Ctx) error {
	helperAuth.ClearSessionCookie(c)
	return helper.JsonOK(c, fiber.Map{"success": true})
}

// ========================== ME ==========================
// GET /api/auth/me: resolve session request saat ini
func Me(c *fiber.Ctx) error {
	session, err := helperAuth.GetSession(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, fiber.Map{
		"user": fiber.Map{"email": session.Email, "name": session.Name},
	})
}

// ========================== UPDATE CREDENTIALS ==========================
// POST /api/auth/update: hanya field yang dikirim yang diubah; password
// di-hash ulang; session diterbitkan ulang supaya nama/email baru langsung
// kelihatan di dashboard.
func UpdateCredentials(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	var user userModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] user not found for session subject: %s", userID)
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] load user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := ApplyCredentialUpdates(&user, input.Name, input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("[ERROR] save user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Session lama masih membawa nama/email lama: terbitkan ulang
	if err := issueSession(c, user); err != nil {
		log.Printf("[ERROR] re-issue session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, fiber.Map{
		"success": true,
		"user":    fiber.Map{"email": user.Email, "name": user.Name},
	})
}

// ========================== internals ==========================

func issueSession(c *fiber.Ctx, user userModel.UserModel) error {
	token, exp, err := helperAuth.BuildSessionToken(helperAuth.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, time.Now().UTC())
	if err != nil {
		return err
	}
	helperAuth.SetSessionCookie(c, token, exp)
	return nil
}

// sessionSubject mengambil subject dari Locals (diisi middleware) atau,
// kalau middleware belum jalan, langsung dari cookie. Normalisasi bentuk
// subject lama terjadi di layer session, bukan di sini.
func sessionSubject(c *fiber.Ctx) (uuid.UUID, error) {
	if raw, _ := c.Locals("session_user_id").(string); raw != "" {
		return uuid.Parse(raw)
	}
	session, err := helperAuth.GetSession(c)
	if err != nil {
		return uuid.Nil, err
	}
	return session.ID, nil
}
