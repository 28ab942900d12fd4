package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	s := NewHMACService("test-secret", time.Minute)

	token, err := s.GenerateAccessToken("emp_001")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.SubjectID != "emp_001" {
		t.Fatalf("unexpected subject: %q", claims.SubjectID)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	s := NewHMACService("test-secret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := s.GenerateAccessToken("emp_001")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = time.Now
	if _, err := s.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := NewHMACService("issuer-secret", time.Minute)
	verifier := NewHMACService("other-secret", time.Minute)

	token, err := issuer.GenerateAccessToken("emp_001")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGenerate_MisconfiguredService(t *testing.T) {
	s := NewHMACService("", time.Minute)
	if _, err := s.GenerateAccessToken("emp_001"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
