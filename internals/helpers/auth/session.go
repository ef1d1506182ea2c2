// internals/helpers/auth/session.go
package auth

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"undanganku_backend/internals/configs"
)

const (
	SessionCookieName = "session"
	SessionTTL        = 24 * time.Hour
)

var (
	ErrNoSession      = errors.New("session tidak ada")
	ErrInvalidSession = errors.New("session tidak valid")
)

// SessionUser adalah payload session yang dibawa cookie (id, email, name).
type SessionUser struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// =========================================================
// TOKEN BUILD / PARSE
// =========================================================

func BuildSessionToken(u SessionUser, now time.Time) (string, time.Time, error) {
	secret := configs.SessionSecret
	if secret == "" {
		return "", time.Time{}, errors.New("SESSION_SECRET kosong")
	}

	exp := now.Add(SessionTTL)
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"name":  u.Name,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// ParseSessionToken memverifikasi cookie session dan mengembalikan user-nya.
// Subject dinormalisasi di satu tempat (lihat NormalizeSubject).
func ParseSessionToken(tokenString string) (SessionUser, error) {
	secret := configs.SessionSecret
	if secret == "" {
		return SessionUser{}, errors.New("SESSION_SECRET kosong")
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionUser{}, ErrInvalidSession
	}

	id, err := NormalizeSubject(claims["sub"])
	if err != nil {
		return SessionUser{}, ErrInvalidSession
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return SessionUser{ID: id, Email: email, Name: name}, nil
}

// =========================================================
// SUBJECT NORMALIZATION (shim kompatibilitas session lama)
// =========================================================

// NormalizeSubject menerima subject dalam beberapa representasi dan memaksa
// semuanya jadi uuid kanonik:
//   - string uuid biasa ("xxxxxxxx-xxxx-...")
//   - string hex 32 karakter tanpa dash
//   - objek buffer lama: {"buffer": {"0": 105, "1": 74, ...}}
//
// Session lama menyimpan id sebagai objek byte-buffer; jangan sebar
// shape-sniffing di call site, cukup di sini.
func NormalizeSubject(v interface{}) (uuid.UUID, error) {
	switch s := v.(type) {
	case string:
		return uuid.Parse(s)
	case map[string]interface{}:
		raw, ok := s["buffer"]
		if !ok {
			return uuid.Nil, fmt.Errorf("subject object tanpa field buffer")
		}
		buf, ok := raw.(map[string]interface{})
		if !ok {
			return uuid.Nil, fmt.Errorf("buffer bukan objek index->byte")
		}
		b, err := bytesFromIndexMap(buf)
		if err != nil {
			return uuid.Nil, err
		}
		return uuid.Parse(fmt.Sprintf("%x", b))
	default:
		return uuid.Nil, fmt.Errorf("tipe subject tidak dikenal: %T", v)
	}
}

// bytesFromIndexMap menyusun ulang {"0": 105, "1": 74, ...} jadi []byte
// sesuai urutan index numerik.
func bytesFromIndexMap(m map[string]interface{}) ([]byte, error) {
	idx := make([]int, 0, len(m))
	for k := range m {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("index buffer bukan angka: %q", k)
		}
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]byte, 0, len(idx))
	for _, i := range idx {
		f, ok := m[strconv.Itoa(i)].(float64)
		if !ok || f < 0 || f > 255 {
			return nil, fmt.Errorf("nilai buffer di index %d bukan byte", i)
		}
		out = append(out, byte(f))
	}
	return out, nil
}

// =========================================================
// COOKIE
// =========================================================

func SetSessionCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  exp,
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}

// GetSession membaca session dari cookie request saat ini.
func GetSession(c *fiber.Ctx) (SessionUser, error) {
	raw := c.Cookies(SessionCookieName)
	if raw == "" {
		return SessionUser{}, ErrNoSession
	}
	return ParseSessionToken(raw)
}
