package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword rejects blank or whitespace-only passwords before any
// hashing or storage work happens.
var ErrEmptyPassword = errors.New("password is empty")

// Hasher produces and verifies password hashes. Passwords are first keyed
// with an HMAC-SHA256 pepper, then bcrypt'd, so a leaked database alone is
// not enough to mount an offline attack. The pepper comes from
// configuration and is fixed for the life of the process.
type Hasher struct {
	pepper []byte
}

func NewHasher(secret string) *Hasher {
	return &Hasher{pepper: []byte(secret)}
}

// Hash returns a bcrypt hash of the peppered password.
func (h *Hasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword(h.peppered(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash.
func (h *Hasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password))
}

// peppered keys the password with the pepper. The fixed-size digest also
// sidesteps bcrypt's 72-byte input limit.
func (h *Hasher) peppered(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
