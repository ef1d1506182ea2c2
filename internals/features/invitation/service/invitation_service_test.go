package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"undanganku_backend/internals/features/invitation/model"
)

func TestBuildColumnUpdates(t *testing.T) {
	t.Run("hanya key yang dikirim yang masuk updates", func(t *testing.T) {
		sections := map[string]json.RawMessage{
			"hero":         json.RawMessage(`{"heading":"The Wedding Of"}`),
			"weddingStory": json.RawMessage(`[]`),
		}
		updates := BuildColumnUpdates(sections)

		require.Len(t, updates, 2)
		assert.Equal(t, datatypes.JSON(`{"heading":"The Wedding Of"}`), updates["hero"])
		assert.Equal(t, datatypes.JSON(`[]`), updates["wedding_story"])
	})

	t.Run("key camelCase dipetakan ke kolom snake_case", func(t *testing.T) {
		sections := map[string]json.RawMessage{
			"paymentMethods": json.RawMessage(`[]`),
			"mediaLibrary":   json.RawMessage(`[]`),
		}
		updates := BuildColumnUpdates(sections)

		assert.Contains(t, updates, "payment_methods")
		assert.Contains(t, updates, "media_library")
	})

	t.Run("isLocked dan password jadi nilai skalar", func(t *testing.T) {
		sections := map[string]json.RawMessage{
			"isLocked": json.RawMessage(`true`),
			"password": json.RawMessage(`"rahasia"`),
		}
		updates := BuildColumnUpdates(sections)

		assert.Equal(t, true, updates["is_locked"])
		assert.Equal(t, "rahasia", updates["password"])
	})

	t.Run("key tak dikenal diabaikan", func(t *testing.T) {
		sections := map[string]json.RawMessage{
			"slug":  json.RawMessage(`"lain"`),
			"acak":  json.RawMessage(`123`),
			"acara": json.RawMessage(`[]`),
		}
		updates := BuildColumnUpdates(sections)

		require.Len(t, updates, 1)
		assert.Contains(t, updates, "acara")
	})
}

func TestDisplayComments(t *testing.T) {
	t.Run("urut favorit dulu lalu terbaru, yang disembunyikan dibuang", func(t *testing.T) {
		raw := datatypes.JSON(`[
			{"name":"A","message":"a","timestamp":"2025-06-01T10:00:00Z","isFavorite":false},
			{"name":"B","message":"b","timestamp":"2025-06-01T09:00:00Z","isFavorite":true},
			{"name":"C","message":"c","timestamp":"2025-06-01T11:00:00Z","isVisible":false,"isFavorite":false}
		]`)
		out := DisplayComments(raw)
		require.Len(t, out, 2)
		assert.Equal(t, "B", out[0].Name)
		assert.Equal(t, "A", out[1].Name)
	})

	t.Run("kolom nil atau korup jadi list kosong", func(t *testing.T) {
		assert.Empty(t, DisplayComments(nil))
		assert.Empty(t, DisplayComments(datatypes.JSON(`{bukan json valid`)))
	})
}

func TestApplyMediaLibraryFallback(t *testing.T) {
	gallery := datatypes.JSON(`["https://cdn.example.com/a.webp"]`)

	t.Run("mediaLibrary kosong diisi dari gallery", func(t *testing.T) {
		inv := &model.InvitationModel{
			Gallery:      gallery,
			MediaLibrary: datatypes.JSON(`[]`),
		}
		ApplyMediaLibraryFallback(inv)
		assert.JSONEq(t, string(gallery), string(inv.MediaLibrary))
	})

	t.Run("mediaLibrary nil diisi dari gallery", func(t *testing.T) {
		inv := &model.InvitationModel{Gallery: gallery}
		ApplyMediaLibraryFallback(inv)
		assert.JSONEq(t, string(gallery), string(inv.MediaLibrary))
	})

	t.Run("mediaLibrary terisi tidak disentuh", func(t *testing.T) {
		lib := datatypes.JSON(`["https://cdn.example.com/b.webp"]`)
		inv := &model.InvitationModel{Gallery: gallery, MediaLibrary: lib}
		ApplyMediaLibraryFallback(inv)
		assert.JSONEq(t, string(lib), string(inv.MediaLibrary))
	})

	t.Run("gallery kosong tidak mengisi apa-apa", func(t *testing.T) {
		inv := &model.InvitationModel{
			Gallery:      datatypes.JSON(`[]`),
			MediaLibrary: datatypes.JSON(`[]`),
		}
		ApplyMediaLibraryFallback(inv)
		assert.Equal(t, datatypes.JSON(`[]`), inv.MediaLibrary)
	})
}
