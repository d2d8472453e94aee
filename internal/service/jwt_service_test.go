package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTService_IssueParseRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected user id: %d", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	_, err := svc.Parse("not-a-jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	_, err = svc.Parse("")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for empty token, got %v", err)
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	other := NewJWTService("other-secret", 15*time.Minute)

	token, err := other.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Parse(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	now := time.Now().UTC()
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    svc.issuer,
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = svc.Parse(expired)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	_, err = svc.Parse(unsigned)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_RejectsMissingUserID(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = svc.Parse(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
