package utils

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
)

// Manager parses access tokens and mints the opaque refresh tokens kept in
// the sessions table.
type Manager struct {
	signingKey string
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}
	return &Manager{signingKey: signingKey}, nil
}

// Parse verifies an access token and returns the user id and role claims.
func (m *Manager) Parse(accessToken string) (string, string, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("unexpected token claims")
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return "", "", errors.New("token carries no user id")
	}
	return userID, role, nil
}

// NewRefreshToken returns 32 bytes from the OS entropy source, hex-encoded.
// These tokens are bearer credentials, so a seeded PRNG is not an option.
func (m *Manager) NewRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}
