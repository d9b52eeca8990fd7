package utils

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("kaye", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	subject, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if subject != "kaye" {
		t.Fatalf("expected subject kaye, got %s", subject)
	}
}

func TestTokenBoundToUsername(t *testing.T) {
	token, err := GenerateToken("kaye", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !ValidateToken(token, "kaye", testSecret) {
		t.Fatal("token should validate for its own subject")
	}
	if ValidateToken(token, "lloyd", testSecret) {
		t.Fatal("token must not validate for a different username")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("kaye", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Fatal("expected parse error for expired token")
	}
	if ValidateToken(token, "kaye", testSecret) {
		t.Fatal("expired token must not validate")
	}
}

func TestTamperedSecretRejected(t *testing.T) {
	token, err := GenerateToken("kaye", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Fatal("expected parse error for wrong secret")
	}
}
