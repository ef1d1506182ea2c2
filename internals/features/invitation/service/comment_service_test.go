package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undanganku_backend/internals/features/invitation/dto"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

func komentar(name, message, ts string, fav bool, visible *bool) dto.Comment {
	c := dto.Comment{
		Name:       name,
		Message:    message,
		IsFavorite: fav,
		IsVisible:  visible,
	}
	if ts != "" {
		parsed, _ := time.Parse(time.RFC3339, ts)
		c.Timestamp = dto.FlexTime{Time: parsed}
	}
	return c
}

func boolPtr(v bool) *bool { return &v }

func TestPrepareComment(t *testing.T) {
	now := mustTime(t, "2025-06-01T10:00:00Z")

	t.Run("trim dan default visible", func(t *testing.T) {
		c, err := PrepareComment("  Budi  ", "  Selamat ya!  ", now)
		require.NoError(t, err)
		assert.Equal(t, "Budi", c.Name)
		assert.Equal(t, "Selamat ya!", c.Message)
		assert.True(t, c.Visible())
		assert.False(t, c.IsFavorite)
		assert.Equal(t, now, c.Timestamp.Time)
	})

	t.Run("nama kosong setelah trim", func(t *testing.T) {
		_, err := PrepareComment("   ", "pesan", now)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("pesan kosong", func(t *testing.T) {
		_, err := PrepareComment("Budi", "", now)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("pesan terlalu panjang", func(t *testing.T) {
		_, err := PrepareComment("Budi", strings.Repeat("a", MaxMessageLen+1), now)
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("batas dihitung per rune bukan byte", func(t *testing.T) {
		// 1000 karakter multibyte = 3000 byte, tetap lolos
		_, err := PrepareComment("Budi", strings.Repeat("é", MaxMessageLen), now)
		assert.NoError(t, err)
	})
}

func TestIsDuplicateWithinWindow(t *testing.T) {
	now := mustTime(t, "2025-06-01T10:00:00Z")
	existing := []dto.Comment{
		komentar("Budi", "Selamat ya!", "2025-06-01T09:59:30Z", false, nil), // 30 detik lalu
	}

	t.Run("duplikat 30 detik lalu ditolak", func(t *testing.T) {
		assert.True(t, IsDuplicateWithinWindow(existing, "Budi", "Selamat ya!", now))
	})

	t.Run("trim ikut dihitung saat membandingkan", func(t *testing.T) {
		assert.True(t, IsDuplicateWithinWindow(existing, "  Budi ", " Selamat ya!  ", now))
	})

	t.Run("teks sama setelah 61 detik boleh", func(t *testing.T) {
		old := []dto.Comment{
			komentar("Budi", "Selamat ya!", "2025-06-01T09:58:59Z", false, nil),
		}
		assert.False(t, IsDuplicateWithinWindow(old, "Budi", "Selamat ya!", now))
	})

	t.Run("nama sama pesan beda boleh", func(t *testing.T) {
		assert.False(t, IsDuplicateWithinWindow(existing, "Budi", "Barakallah", now))
	})

	t.Run("timestamp korup tidak memblokir", func(t *testing.T) {
		rusak := []dto.Comment{
			komentar("Budi", "Selamat ya!", "", false, nil),
		}
		assert.False(t, IsDuplicateWithinWindow(rusak, "Budi", "Selamat ya!", now))
	})
}

func TestPrepend(t *testing.T) {
	existing := []dto.Comment{
		komentar("Lama", "pesan lama", "2025-06-01T09:00:00Z", false, nil),
	}
	baru := komentar("Baru", "pesan baru", "2025-06-01T10:00:00Z", false, nil)

	out := Prepend(existing, baru)
	require.Len(t, out, 2)
	assert.Equal(t, "Baru", out[0].Name)
	assert.Equal(t, "Lama", out[1].Name)
	// slice asli tidak berubah
	assert.Equal(t, "Lama", existing[0].Name)
}

func TestSortForDisplay(t *testing.T) {
	t.Run("favorit dulu lalu terbaru", func(t *testing.T) {
		in := []dto.Comment{
			komentar("A", "a", "2025-06-01T10:00:00Z", false, nil),
			komentar("B", "b", "2025-06-01T09:00:00Z", true, nil),
			komentar("C", "c", "2025-06-01T11:00:00Z", false, nil),
			komentar("D", "d", "2025-06-01T08:00:00Z", true, nil),
		}
		out := SortForDisplay(in)
		names := []string{out[0].Name, out[1].Name, out[2].Name, out[3].Name}
		assert.Equal(t, []string{"B", "D", "C", "A"}, names)
	})

	t.Run("isVisible false dibuang, nil tetap tampil", func(t *testing.T) {
		in := []dto.Comment{
			komentar("Tampil", "x", "2025-06-01T10:00:00Z", false, nil),
			komentar("Sembunyi", "x", "2025-06-01T11:00:00Z", false, boolPtr(false)),
			komentar("Eksplisit", "x", "2025-06-01T09:00:00Z", false, boolPtr(true)),
		}
		out := SortForDisplay(in)
		require.Len(t, out, 2)
		for _, c := range out {
			assert.NotEqual(t, "Sembunyi", c.Name)
		}
	})

	t.Run("timestamp invalid jatuh ke paling tua tanpa panic", func(t *testing.T) {
		in := []dto.Comment{
			komentar("Rusak", "x", "", false, nil),
			komentar("Valid", "x", "2025-06-01T10:00:00Z", false, nil),
		}
		out := SortForDisplay(in)
		require.Len(t, out, 2)
		assert.Equal(t, "Valid", out[0].Name)
		assert.Equal(t, "Rusak", out[1].Name)
	})

	t.Run("stabil untuk timestamp identik", func(t *testing.T) {
		in := []dto.Comment{
			komentar("Pertama", "x", "2025-06-01T10:00:00Z", false, nil),
			komentar("Kedua", "x", "2025-06-01T10:00:00Z", false, nil),
			komentar("Ketiga", "x", "2025-06-01T10:00:00Z", false, nil),
		}
		out := SortForDisplay(in)
		require.Len(t, out, 3)
		assert.Equal(t, "Pertama", out[0].Name)
		assert.Equal(t, "Kedua", out[1].Name)
		assert.Equal(t, "Ketiga", out[2].Name)
	})

	t.Run("input tidak dimodifikasi", func(t *testing.T) {
		in := []dto.Comment{
			komentar("A", "a", "2025-06-01T09:00:00Z", false, nil),
			komentar("B", "b", "2025-06-01T10:00:00Z", true, nil),
		}
		_ = SortForDisplay(in)
		assert.Equal(t, "A", in[0].Name)
		assert.Equal(t, "B", in[1].Name)
	})
}
