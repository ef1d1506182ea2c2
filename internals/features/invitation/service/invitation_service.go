package service

import (
	"encoding/json"

	"gorm.io/datatypes"

	"undanganku_backend/internals/features/invitation/dto"
	"undanganku_backend/internals/features/invitation/model"
)

// kolomByKey memetakan top-level key dokumen ke nama kolom JSONB-nya.
var kolomByKey = map[string]string{
	"hero":           "hero",
	"overlay":        "overlay",
	"mempelai":       "mempelai",
	"acara":          "acara",
	"weddingStory":   "wedding_story",
	"paymentMethods": "payment_methods",
	"comments":       "comments",
	"gallery":        "gallery",
	"mediaLibrary":   "media_library",
}

// BuildColumnUpdates menerjemahkan body PUT parsial jadi map kolom -> nilai
// untuk gorm Updates. Hanya key yang dikirim yang diganti (semantik $set per
// top-level key): merge strategy antar-edit konkuren tetap last-write-wins.
func BuildColumnUpdates(sections map[string]json.RawMessage) map[string]interface{} {
	updates := make(map[string]interface{}, len(sections))

	for key, raw := range sections {
		if col, ok := kolomByKey[key]; ok {
			updates[col] = datatypes.JSON(raw)
			continue
		}
		switch key {
		case "isLocked":
			var v bool
			if err := json.Unmarshal(raw, &v); err == nil {
				updates["is_locked"] = v
			}
		case "password":
			var v string
			if err := json.Unmarshal(raw, &v); err == nil {
				updates["password"] = v
			}
		}
	}

	return updates
}

// ApplyMediaLibraryFallback: dashboard lama pernah hidup tanpa media library;
// dokumen hasil migrasi bisa punya gallery terisi tapi mediaLibrary kosong.
// Untuk respons read, isi mediaLibrary dari gallery supaya modal pemilih
// gambar tidak kosong. Tidak menulis balik ke storage.
func ApplyMediaLibraryFallback(inv *model.InvitationModel) {
	if !emptyJSONList(inv.MediaLibrary) || emptyJSONList(inv.Gallery) {
		return
	}
	cp := make(datatypes.JSON, len(inv.Gallery))
	copy(cp, inv.Gallery)
	inv.MediaLibrary = cp
}

// DisplayComments merender kolom comments mentah jadi urutan tampil halaman
// publik (lihat SortForDisplay). Kolom korup dianggap list kosong supaya GET
// tidak pernah gagal gara-gara satu dokumen migrasi rusak.
func DisplayComments(raw datatypes.JSON) []dto.Comment {
	var list []dto.Comment
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &list); err != nil {
			return []dto.Comment{}
		}
	}
	return SortForDisplay(list)
}

func emptyJSONList(raw datatypes.JSON) bool {
	if len(raw) == 0 {
		return true
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return false
	}
	return len(list) == 0
}
