package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestIssueAndParseToken(t *testing.T) {
	adminID := uuid.New()

	token, expiresAt, err := IssueToken("secret", adminID, "admin", 1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if expiresAt.IsZero() {
		t.Error("expiry not set")
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.AdminID != adminID {
		t.Errorf("admin id = %s, want %s", claims.AdminID, adminID)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want %q", claims.Role, "admin")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := IssueToken("secret", uuid.New(), "admin", 1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
