package helper

import (
	"testing"
	"time"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	auth := SetupAuth("super-secret", time.Hour)

	tok, err := auth.GenerateToken("13800138000")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := auth.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.Phone != "13800138000" {
		t.Fatalf("phone mismatch: got %q want %q", claims.Phone, "13800138000")
	}
}

func TestVerifyToken_BearerPrefix(t *testing.T) {
	t.Parallel()

	auth := SetupAuth("super-secret", time.Hour)

	tok, err := auth.GenerateToken("13800138000")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := auth.VerifyToken("Bearer " + tok)
	if err != nil {
		t.Fatalf("VerifyToken with bearer prefix error: %v", err)
	}
	if claims.Phone != "13800138000" {
		t.Fatalf("phone mismatch: got %q", claims.Phone)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	auth := Auth{Secret: "secret", Expiry: -1 * time.Second}

	tok, err := auth.GenerateToken("13800138000")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := auth.VerifyToken(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := SetupAuth("right-secret", time.Hour).GenerateToken("13800138000")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := SetupAuth("wrong-secret", time.Hour).VerifyToken(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := SetupAuth("k", time.Hour).VerifyToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestGenerateToken_EmptyPhone(t *testing.T) {
	t.Parallel()

	if _, err := SetupAuth("k", time.Hour).GenerateToken(""); err == nil {
		t.Fatalf("expected error for empty phone, got nil")
	}
}
