package service

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"undanganku_backend/internals/features/invitation/dto"
)

// Jendela anti-spam: komentar dengan nama + pesan sama (setelah trim) yang
// berumur kurang dari 60 detik memblokir submit berikutnya. Ini heuristik,
// bukan idempotency key: dua orang berbeda dengan teks sama ikut keblokir.
const DuplicateWindow = 60 * time.Second

// Batas panjang eksplisit (keputusan produksi, dokumen lama tidak membatasi)
const (
	MaxNameLen    = 100
	MaxMessageLen = 1000
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrTooLong         = errors.New("Name or message too long")
	ErrDuplicateRecent = errors.New("You are posting too fast or duplicate message.")
)

// PrepareComment memvalidasi input dan mengembalikan record komentar baru.
func PrepareComment(name, message string, now time.Time) (dto.Comment, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	if name == "" || message == "" {
		return dto.Comment{}, ErrMissingFields
	}
	if utf8.RuneCountInString(name) > MaxNameLen || utf8.RuneCountInString(message) > MaxMessageLen {
		return dto.Comment{}, ErrTooLong
	}

	visible := true
	return dto.Comment{
		Name:       name,
		Message:    message,
		Timestamp:  dto.FlexTime{Time: now.UTC()},
		IsVisible:  &visible,
		IsFavorite: false,
	}, nil
}

// IsDuplicateWithinWindow: ada komentar lama dengan nama + pesan sama
// (trimmed) yang timestamp-nya kurang dari DuplicateWindow sebelum now?
func IsDuplicateWithinWindow(existing []dto.Comment, name, message string, now time.Time) bool {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	for _, c := range existing {
		if strings.TrimSpace(c.Name) != name || strings.TrimSpace(c.Message) != message {
			continue
		}
		if c.Timestamp.Time.IsZero() {
			continue
		}
		if now.Sub(c.Timestamp.Time) < DuplicateWindow {
			return true
		}
	}
	return false
}

// Prepend menyisipkan komentar baru di kepala list: urutan simpan adalah
// kebalikan kronologis penyisipan, terpisah dari urutan display.
func Prepend(existing []dto.Comment, c dto.Comment) []dto.Comment {
	out := make([]dto.Comment, 0, len(existing)+1)
	out = append(out, c)
	out = append(out, existing...)
	return out
}

// SortForDisplay: buang yang isVisible == false (absen = tampil), lalu urut
// stabil: favorit dulu, dalam tier sama timestamp terbaru dulu. Timestamp
// invalid dihitung 0 sehingga jatuh ke paling tua tanpa panic.
func SortForDisplay(comments []dto.Comment) []dto.Comment {
	out := make([]dto.Comment, 0, len(comments))
	for _, c := range comments {
		if c.Visible() {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFavorite != out[j].IsFavorite {
			return out[i].IsFavorite
		}
		return out[i].Timestamp.SortKey() > out[j].Timestamp.SortKey()
	})
	return out
}
