package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate = validator.New()

// ============================
// Section DTOs (wire key persis mengikuti dokumen lama)
// ============================

type HeroQuote struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Source      string `json:"source"`
}

type Hero struct {
	Heading string    `json:"heading" validate:"required"`
	Names   string    `json:"names" validate:"required"`
	Date    string    `json:"date" validate:"required"`
	Image   string    `json:"image"`
	Quote   HeroQuote `json:"quote"`
}

type Overlay struct {
	BackgroundImage string `json:"backgroundImage"`
	CoupleImage     string `json:"coupleImage"`
}

type MempelaiPerson struct {
	NamaLengkap string `json:"namaLengkap"`
	PutraDari   string `json:"putraDari,omitempty"`
	PutriDari   string `json:"putriDari,omitempty"`
	FotoURL     string `json:"fotoUrl"`
}

type Mempelai struct {
	Pria   MempelaiPerson `json:"pria"`
	Wanita MempelaiPerson `json:"wanita"`
}

type Acara struct {
	Title   string `json:"title" validate:"required"`
	Tanggal string `json:"tanggal" validate:"required"`
	Jam     string `json:"jam" validate:"required"`
	Tempat  string `json:"tempat" validate:"required"`
	Maps    string `json:"maps"`
	Enabled *bool  `json:"enabled,omitempty"`
}

type WeddingStory struct {
	Year    string `json:"year"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// PaymentMethod adalah varian ber-tag `type`. Field yang wajib tergantung
// tag-nya (lihat ValidateVariant): jangan cek kombinasi field di tempat lain.
type PaymentMethod struct {
	Type    string `json:"type" validate:"required,oneof=bank qris address"`
	Bank    string `json:"bank,omitempty"`
	Number  string `json:"number,omitempty"`
	Holder  string `json:"holder,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Image   string `json:"image,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// ValidateVariant memeriksa field wajib per tipe:
//   - bank    : bank, number, holder
//   - qris    : bank (label e-wallet), holder, image (QR)
//   - address : name, address
func (p PaymentMethod) ValidateVariant() error {
	switch p.Type {
	case "bank":
		if p.Bank == "" || p.Number == "" || p.Holder == "" {
			return fmt.Errorf("payment type 'bank' butuh field bank, number, holder")
		}
	case "qris":
		if p.Bank == "" || p.Image == "" {
			return fmt.Errorf("payment type 'qris' butuh field bank (label) dan image (QR)")
		}
	case "address":
		if p.Name == "" || p.Address == "" {
			return fmt.Errorf("payment type 'address' butuh field name dan address")
		}
	default:
		return fmt.Errorf("payment type harus salah satu dari: bank, qris, address")
	}
	return nil
}

// ============================
// Comment
// ============================

// FlexTime menerima timestamp RFC3339, epoch milis, atau string rusak.
// Input yang tidak bisa di-parse jadi zero time: tidak pernah error, supaya
// satu komentar lama yang korup tidak mematahkan seluruh list.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	// angka: epoch millis
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(n).UTC()
		return nil
	}

	unquoted := strings.Trim(s, `"`)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z0700", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, unquoted); err == nil {
			t.Time = parsed
			return nil
		}
	}

	t.Time = time.Time{}
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// SortKey dipakai pengurutan display: zero/invalid dihitung 0 (paling tua).
func (t FlexTime) SortKey() int64 {
	if t.Time.IsZero() {
		return 0
	}
	return t.Time.UnixMilli()
}

type Comment struct {
	Name      string   `json:"name"`
	Message   string   `json:"message"`
	Timestamp FlexTime `json:"timestamp"`
	// nil dianggap visible; hanya false eksplisit yang disembunyikan
	IsVisible  *bool `json:"isVisible,omitempty"`
	IsFavorite bool  `json:"isFavorite"`
}

func (c Comment) Visible() bool {
	return c.IsVisible == nil || *c.IsVisible
}

// ============================
// Request DTOs
// ============================

type SubmitCommentRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ============================
// Partial update: validasi per section
// ============================

// Kunci section yang dikenal dokumen. Key lain (termasuk slug yang sudah
// di-strip lebih dulu) diabaikan, meniru skema strict yang lama.
var sectionKeys = map[string]struct{}{
	"hero": {}, "overlay": {}, "mempelai": {}, "acara": {},
	"weddingStory": {}, "paymentMethods": {}, "comments": {},
	"gallery": {}, "mediaLibrary": {}, "isLocked": {}, "password": {},
}

func IsKnownSection(key string) bool {
	_, ok := sectionKeys[key]
	return ok
}

// ValidateSections meng-unmarshal tiap section yang dikirim ke tipe deklaratifnya
// dan menjalankan aturan validasi. Hasil: map field -> pesan (kosong = lolos).
func ValidateSections(sections map[string]json.RawMessage) map[string]string {
	errs := make(map[string]string)

	for key, raw := range sections {
		switch key {
		case "hero":
			var v Hero
			if err := json.Unmarshal(raw, &v); err != nil {
				errs[key] = "hero harus berupa objek"
				continue
			}
			if err := validate.Struct(&v); err != nil {
				errs[key] = validationMessage(err)
			}
		case "overlay":
			var v Overlay
			if err := json.Unmarshal(raw, &v); err != nil {
				errs[key] = "overlay harus berupa objek"
			}
		case "mempelai":
			var v Mempelai
			if err := json.Unmarshal(raw, &v); err != nil {
				errs[key] = "mempelai harus berupa objek"
			}
		case "acara":
			var list []Acara
			if err := json.Unmarshal(raw, &list); err != nil {
				errs[key] = "acara harus berupa array"
				continue
			}
			for i, item := range list {
				if err := validate.Struct(&item); err != nil {
					errs[fmt.Sprintf("acara[%d]", i)] = validationMessage(err)
				}
			}
		case "weddingStory":
			var list []WeddingStory
			if err := json.Unmarshal(raw, &list); err != nil {
				errs[key] = "weddingStory harus berupa array"
				continue
			}
			for i, item := range list {
				if err := validate.Struct(&item); err != nil {
					errs[fmt.Sprintf("weddingStory[%d]", i)] = validationMessage(err)
				}
			}
		case "paymentMethods":
			var list []PaymentMethod
			if err := json.Unmarshal(raw, &list); err != nil {
				errs[key] = "paymentMethods harus berupa array"
				continue
			}
			for i, item := range list {
				if err := validate.Struct(&item); err != nil {
					errs[fmt.Sprintf("paymentMethods[%d]", i)] = validationMessage(err)
					continue
				}
				if err := item.ValidateVariant(); err != nil {
					errs[fmt.Sprintf("paymentMethods[%d]", i)] = err.Error()
				}
			}
		case "comments":
			var list []Comment
			if err := json.Unmarshal(raw, &list); err != nil {
				errs[key] = "comments harus berupa array"
			}
		case "gallery", "mediaLibrary":
			var list []string
			if err := json.Unmarshal(raw, &list); err != nil {
				errs[key] = key + " harus berupa array string"
			}
		case "isLocked":
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				errs[key] = "isLocked harus boolean"
			}
		case "password":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				errs[key] = "password harus string"
			}
		}
	}

	return errs
}

func validationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid"
	}
	parts := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		parts = append(parts, fieldErr.Field()+":"+fieldErr.Tag())
	}
	return strings.Join(parts, ", ")
}
