package utils

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, err := NewManager("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}

	// Tokens are bearer credentials: no two mints may collide, not even
	// from independently constructed managers.
	other, _ := NewManager("test-key")
	seen := map[string]bool{first: true}
	for i := 0; i < 64; i++ {
		tok, err := m.NewRefreshToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[tok] {
			t.Fatal("refresh tokens must not repeat")
		}
		seen[tok] = true

		tok, err = other.NewRefreshToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[tok] {
			t.Fatal("refresh tokens must not repeat across managers")
		}
		seen[tok] = true
	}
}

func TestParse(t *testing.T) {
	m, _ := NewManager("test-key")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"role":    "agent",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, role, err := m.Parse(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "u-1" || role != "agent" {
		t.Fatalf("expected (u-1, agent), got (%s, %s)", userID, role)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m, _ := NewManager("test-key")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("other-key"))

	if _, _, err := m.Parse(signed); err == nil {
		t.Fatal("expected error for token signed with a different key")
	}
}
