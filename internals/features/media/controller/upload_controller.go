package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "undanganku_backend/internals/helpers"
	"undanganku_backend/internals/helpers/oss"
)

type UploadController struct {
	OSS *oss.OSSService
}

func NewUploadController(svc *oss.OSSService) *UploadController {
	return &UploadController{OSS: svc}
}

// =======================
// ⬆️ Upload Image (dashboard, session-gated)
// POST /api/upload: multipart "file"; dokumen hanya menyimpan URL hasilnya
// =======================
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Image storage is not configured")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}
	if fh.Size > oss.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File too large (max 5MB)")
	}

	url, err := ctrl.OSS.UploadAsWebP(c.UserContext(), fh)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "format tidak didukung") {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		log.Printf("[ERROR] upload ke OSS gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	return helper.JsonOK(c, fiber.Map{"url": url})
}
