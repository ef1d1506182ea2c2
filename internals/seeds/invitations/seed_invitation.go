package invitations

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"undanganku_backend/internals/features/invitation/model"
	"undanganku_backend/internals/features/invitation/service"
)

// SeedInvitationFromJSON membaca dokumen undangan dari file JSON dan
// menyimpannya dengan slug dipaksa "main" (hapus dulu yang lama, lalu insert
// ulang: sama seperti seeder lama).
func SeedInvitationFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file undangan:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(file, &sections); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}
	delete(sections, "slug") // slug selalu "main"

	if err := db.Where("slug = ?", model.MainSlug).Delete(&model.InvitationModel{}).Error; err != nil {
		log.Fatalf("❌ Gagal hapus undangan lama: %v", err)
	}
	log.Printf("🗑️ Undangan lama slug '%s' dihapus (kalau ada).", model.MainSlug)

	inv := model.InvitationModel{Slug: model.MainSlug}
	if err := db.Create(&inv).Error; err != nil {
		log.Fatalf("❌ Gagal insert undangan: %v", err)
	}

	updates := service.BuildColumnUpdates(sections)
	if len(updates) > 0 {
		if err := db.Model(&inv).Updates(updates).Error; err != nil {
			log.Fatalf("❌ Gagal isi section undangan: %v", err)
		}
	}

	log.Println("✅ Seeding undangan dari JSON berhasil.")
}
