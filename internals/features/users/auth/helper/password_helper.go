package helper

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password dengan bcrypt (default cost)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash membandingkan hash tersimpan dengan password input.
// bcrypt.CompareHashAndPassword sudah constant-time.
func CheckPasswordHash(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
