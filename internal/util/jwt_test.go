package util

import (
	"testing"
	"time"
)

func TestGenerateParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, "finance-dashboard", "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email = %q, want ana@example.com", claims.Email)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("token should not be expired")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "finance-dashboard", "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("token signed with another secret should not parse")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", "finance-dashboard", "ana@example.com", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); err == nil {
		t.Error("garbage token should not parse")
	}
}
