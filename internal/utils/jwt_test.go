// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/agromatch/models"
	"github.com/golang-jwt/jwt/v5"
)

var testClaims = models.Claims{ID: "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", Email: "ana@x.io", Name: "Ana"}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuedAt := time.Now()

	token, err := GenerateJWTToken(testClaims, "test-issuer", issuedAt, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Claims.Issuer)
	}
	if token.Claims.Subject != testClaims.ID {
		t.Errorf("expected subject %s, got %s", testClaims.ID, token.Claims.Subject)
	}
	if !token.Claims.ExpiresAt.Time.Equal(issuedAt.Add(time.Hour).Truncate(time.Second)) {
		t.Errorf("unexpected expiry %v", token.Claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		claims   models.Claims
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", testClaims, "", time.Hour, "key"},
		{"zero duration", testClaims, "iss", 0, "key"},
		{"empty key", testClaims, "iss", time.Hour, ""},
		{"empty user id", models.Claims{Email: "a@b.c"}, "iss", time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.claims, tt.issuer, time.Now(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testClaims, "agromatch", time.Now(), time.Hour, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "agromatch")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.ID != testClaims.ID || parsed.Claims.Email != testClaims.Email || parsed.Claims.Name != testClaims.Name {
		t.Errorf("claims mismatch: got %+v", parsed.Claims)
	}
	if parsed.String() != issued.SignedString {
		t.Error("expected parsed token to keep its signed string")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testClaims, "agromatch", time.Now().Add(-8*24*time.Hour), 7*24*time.Hour, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "agromatch")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, _ := GenerateJWTToken(testClaims, "agromatch", time.Now(), time.Hour, "secret")

	_, err := ValidateAndParseJWTToken(issued.SignedString, "other-secret", "agromatch")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, _ := GenerateJWTToken(testClaims, "someone-else", time.Now(), time.Hour, "secret")

	_, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "agromatch")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected ErrTokenInvalidIssuer, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsNonHMAC(t *testing.T) {
	claims := testClaims
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    "agromatch",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(unsigned, "secret", "agromatch"); err == nil {
		t.Error("expected error for alg=none token, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingUserID(t *testing.T) {
	claims := models.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "agromatch",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "secret", "agromatch"); err == nil {
		t.Error("expected error for token without user id, got nil")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "secret", "agromatch"); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"", "", true},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
