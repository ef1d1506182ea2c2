package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"undanganku_backend/internals/features/invitation/dto"
	"undanganku_backend/internals/features/invitation/model"
	"undanganku_backend/internals/features/invitation/service"
	helper "undanganku_backend/internals/helpers"
)

type InvitationController struct {
	DB *gorm.DB
}

func NewInvitationController(db *gorm.DB) *InvitationController {
	return &InvitationController{DB: db}
}

// =======================
// 📄 Get Invitation (public)
// GET /api/invitation (mode single, selalu slug "main")
// =======================
func (ctrl *InvitationController) GetInvitation(c *fiber.Ctx) error {
	var inv model.InvitationModel
	if err := ctrl.DB.Where("slug = ?", model.MainSlug).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invitation not found")
		}
		log.Printf("[ERROR] fetch invitation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	service.ApplyMediaLibraryFallback(&inv)

	// ?comments=display: komentar sudah diurutkan untuk halaman publik
	// (favorit dulu, terbaru dulu, yang disembunyikan dibuang). Tanpa query
	// ini kolom dikembalikan persis seperti tersimpan.
	if c.Query("comments") == "display" {
		if raw, err := json.Marshal(service.DisplayComments(inv.Comments)); err == nil {
			inv.Comments = datatypes.JSON(raw)
		}
	}

	return helper.JsonOK(c, inv)
}

// =======================
// ✏️ Update Invitation (dashboard, session-gated)
// PUT /api/invitation: merge parsial per top-level key, tanpa upsert
// =======================
func (ctrl *InvitationController) UpdateInvitation(c *fiber.Ctx) error {
	var sections map[string]json.RawMessage
	if err := c.BodyParser(&sections); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Mode single: slug dari body dibuang, target selalu "main"
	delete(sections, "slug")

	if fieldErrs := dto.ValidateSections(sections); len(fieldErrs) > 0 {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fieldErrs)
	}

	var inv model.InvitationModel
	if err := ctrl.DB.Where("slug = ?", model.MainSlug).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invitation not found")
		}
		log.Printf("[ERROR] load invitation for update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update invitation")
	}

	updates := service.BuildColumnUpdates(sections)
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&inv).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update invitation: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update invitation")
		}
	}

	// Baca ulang supaya response = dokumen tersimpan
	if err := ctrl.DB.Where("slug = ?", model.MainSlug).First(&inv).Error; err != nil {
		log.Printf("[ERROR] reload invitation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update invitation")
	}

	// Shim mediaLibrary yang sama dengan GET; dashboard resync dari response
	// PUT juga harus melihat dokumen migrasi dengan benar
	service.ApplyMediaLibraryFallback(&inv)
	return helper.JsonOK(c, inv)
}

// =======================
// 💬 Submit Comment (public)
// POST /api/invitation/comment
// =======================
func (ctrl *InvitationController) SubmitComment(c *fiber.Ctx) error {
	var body dto.SubmitCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	now := time.Now().UTC()
	newComment, err := service.PrepareComment(body.Name, body.Message, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var inv model.InvitationModel
	if err := ctrl.DB.Where("slug = ?", model.MainSlug).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invitation not found")
		}
		log.Printf("[ERROR] load invitation for comment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var komentar []dto.Comment
	if len(inv.Comments) > 0 {
		if err := json.Unmarshal(inv.Comments, &komentar); err != nil {
			log.Printf("[WARN] kolom comments korup, mulai dari list kosong: %v", err)
			komentar = nil
		}
	}

	if service.IsDuplicateWithinWindow(komentar, newComment.Name, newComment.Message, now) {
		return helper.JsonError(c, fiber.StatusTooManyRequests, "You are posting too fast or duplicate message.")
	}

	komentar = service.Prepend(komentar, newComment)

	raw, err := json.Marshal(komentar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Read-modify-write tanpa lock; balapan dua submit bersamaan memang
	// last-write-wins, sama dengan perilaku lama.
	if err := ctrl.DB.Model(&inv).Update("comments", datatypes.JSON(raw)).Error; err != nil {
		log.Printf("[ERROR] simpan comments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, fiber.Map{
		"success":  true,
		"comments": komentar,
	})
}
