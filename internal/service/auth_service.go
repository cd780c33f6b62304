package service

import (
	"errors"
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/token"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password at login. Callers must not distinguish the two: either way the
// response is a 401, never a 500.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles user auth logic
type AuthService struct {
	authRepo repository.Authorization
	codec    *token.Codec
	hasher   *Hasher
}

func NewAuthService(repo repository.Authorization, codec *token.Codec, hasher *Hasher) *AuthService {
	return &AuthService{authRepo: repo, codec: codec, hasher: hasher}
}

// SignUp hashes the password and creates a new user, returning only the
// public shape — the stored hash never leaves the service layer.
func (s *AuthService) SignUp(username, password string) (models.PublicUser, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("invalid password: %w", err)
	}
	u, err := s.authRepo.Create(username, hash)
	if err != nil {
		return models.PublicUser{}, err
	}
	return u.Public(), nil
}

// GenerateToken validates credentials and returns a signed bearer token.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := s.hasher.Verify(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.codec.Issue(u.ID)
}

// ParseToken verifies a bearer token and returns the encoded user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	return s.codec.Verify(accessToken)
}
